package order

// PackageContent is one claim inside a package manifest: a quantity of the
// item at ItemPosition that the shipment carries.
type PackageContent struct {
	ItemPosition int `json:"itemIndex"`
	Quantity     int `json:"quantity"`
}

// PackageManifest describes one physical shipment already dispatched for the
// order. Position is the manifest's index in the package attachment; delivered
// occurrences drawn from the same manifest always group into the same parcel.
//
// The tracking fields are pass-through metadata for the tracking UI; the
// computation never interprets them.
type PackageManifest struct {
	Position int              `json:"position"`
	Contents []PackageContent `json:"items"`

	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl"`
	CourierStatus  string `json:"courierStatus"`
	InvoiceNumber  string `json:"invoiceNumber"`
}

// QuantityFor returns the quantity this manifest claims for the item at the
// given position. Positions the manifest does not reference claim zero.
func (p PackageManifest) QuantityFor(itemPosition int) int {
	total := 0
	for _, content := range p.Contents {
		if content.ItemPosition == itemPosition {
			total += content.Quantity
		}
	}
	return total
}

// References reports whether the manifest claims any quantity of the item at
// the given position.
func (p PackageManifest) References(itemPosition int) bool {
	for _, content := range p.Contents {
		if content.ItemPosition == itemPosition {
			return true
		}
	}
	return false
}

// PackageAttachment wraps the dispatched-shipment manifests attached to an
// order, tagged with their positions at ingestion.
type PackageAttachment struct {
	Packages []PackageManifest `json:"packages"`
}

// TagManifestPositions returns a copy of manifests with Position assigned
// from each manifest's index, mirroring how item positions are fixed at
// ingestion.
func TagManifestPositions(manifests []PackageManifest) []PackageManifest {
	tagged := make([]PackageManifest, len(manifests))
	for i, manifest := range manifests {
		manifest.Position = i
		tagged[i] = manifest
	}
	return tagged
}
