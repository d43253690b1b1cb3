/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/medtran/internal/capability"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the backend and local capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		ctx := context.Background()

		fmt.Printf("Backend:      %s\n", a.client.BaseURL())
		status, err := a.client.Health(ctx)
		if err != nil {
			fmt.Printf("Status:       unreachable (%v)\n", err)
		} else {
			fmt.Printf("Status:       %s\n", status)
		}
		if greeting, err := a.client.Greet(ctx); err == nil && greeting != "" {
			fmt.Printf("Greeting:     %s\n", greeting)
		}
		fmt.Printf("Recognition:  %s (%s)\n", capability.RecognitionStatus(a.caps), a.cfg.Speech.Recognizer)
		fmt.Printf("Synthesis:    %s (%s)\n", capability.SynthesisStatus(a.caps), a.cfg.Speech.Synthesizer)

		if err != nil {
			return fmt.Errorf("backend health check failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
