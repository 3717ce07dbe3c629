package shipping

// Address is a delivery or pickup destination referenced by logistics entries
// and pickup store info.
type Address struct {
	AddressID   string `json:"addressId"`
	AddressType string `json:"addressType"`
	Street      string `json:"street"`
	Number      string `json:"number"`
	Complement  string `json:"complement"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

// IsComplete reports whether the address carries enough detail to dispatch
// to: street, number, and postal code must all be present.
func (a Address) IsComplete() bool {
	return a.Street != "" && a.Number != "" && a.PostalCode != ""
}

// FindAddress looks up an address by ID. Returns nil when the ID is empty or
// no address matches; a missing address is a legitimate state, not an error.
func FindAddress(addresses []Address, addressID string) *Address {
	if addressID == "" {
		return nil
	}
	for i := range addresses {
		if addresses[i].AddressID == addressID {
			return &addresses[i]
		}
	}
	return nil
}
