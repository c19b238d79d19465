package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// HealthCmd reports the effective configuration and, in live mode, whether
// n8n answers with the configured API key.
type HealthCmd struct {
	JSON bool `long:"json" description:"print result as JSON"`
}

func (c *HealthCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	timeout := time.Duration(svc.Config().N8N.TimeoutSec) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	health := svc.Health(ctx)
	if c.JSON {
		data, _ := json.MarshalIndent(health, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Printf("Server : %s %s\n", health.Name, health.Version)
		fmt.Printf("n8n    : %s\n", health.URL)
		fmt.Printf("Mock   : %v\n", health.MockMode)
		fmt.Printf("Tools  : %d\n", health.Tools)
		if health.Reachable != nil {
			fmt.Printf("Status : reachable=%v %s\n", *health.Reachable, health.Elapsed)
		}
		if health.Error != "" {
			fmt.Printf("Error  : %s (%s)\n", health.Error, health.ErrorType)
		}
	}
	if !health.Healthy() {
		return fmt.Errorf("n8n is not reachable")
	}
	return nil
}
