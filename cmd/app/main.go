package main

import (
	"encoding/json"
	"os"

	"parcels/cmd"
	"parcels/internal/core/application/usecases/queries"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// The demo binary reads an order snapshot from the configured JSON file,
// computes its parcels, and prints them to stdout.
func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)
	run(app, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		OrderFile:                               goDotEnvVariable("ORDER_FILE"),
		CriteriaSLAOptions:                      goDotEnvVariable("CRITERIA_SLA_OPTIONS"),
		CriteriaSelectedSLA:                     goDotEnvVariable("CRITERIA_SELECTED_SLA"),
		CriteriaSeller:                          goDotEnvVariable("CRITERIA_SELLER"),
		CriteriaShippingEstimate:                goDotEnvVariable("CRITERIA_SHIPPING_ESTIMATE"),
		CriteriaDeliveryChannel:                 goDotEnvVariable("CRITERIA_DELIVERY_CHANNEL"),
		CriteriaGroupBySelectedSLAType:          goDotEnvVariable("CRITERIA_GROUP_BY_SELECTED_SLA_TYPE"),
		CriteriaGroupByAvailableDeliveryWindows: goDotEnvVariable("CRITERIA_GROUP_BY_AVAILABLE_DELIVERY_WINDOWS"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	return os.Getenv(key)
}

func run(app cmd.CompositionRoot, configs cmd.Config) {
	snapshot, err := cmd.LoadOrder(configs.OrderFile)
	if err != nil {
		log.Fatalf("loading order: %v", err)
	}

	patch, err := configs.CriteriaPatch()
	if err != nil {
		log.Fatalf("reading criteria overrides: %v", err)
	}

	handler := app.CreateComputeParcelsQueryHandler()
	query, err := queries.NewComputeParcelsQuery(snapshot, patch)
	if err != nil {
		log.Fatalf("building query: %v", err)
	}

	parcels, err := handler.Handle(query)
	if err != nil {
		log.Fatalf("computing parcels: %v", err)
	}

	log.Infof("order splits into %d parcels", len(parcels))
	for _, p := range parcels {
		state := "pending"
		if p.IsDelivered() {
			state = "delivered"
		}
		log.Infof("parcel %s: %s, %d items, quantity %d", p.ID, state, len(p.Items), p.TotalQuantity())
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(parcels); err != nil {
		log.Fatalf("encoding parcels: %v", err)
	}
}
