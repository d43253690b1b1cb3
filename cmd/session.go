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
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/valpere/medtran/internal/capability"
	"github.com/valpere/medtran/internal/console"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive translation session",
	Long: `Open an interactive session. Type text to set the input, then use
/translate, /refine, /listen and /speak. Operations run in the background and
their results are printed as they arrive. Type /help for all commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(checkLanguage)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if targetLang != "" {
			if err := a.controller.SetLanguage(targetLang); err != nil {
				return err
			}
		}

		rl, err := console.NewReadline()
		if err != nil {
			return err
		}
		defer rl.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Fprintf(rl.Stdout(), "Backend: %s  recognition: %s  synthesis: %s\n",
			a.client.BaseURL(),
			capability.RecognitionStatus(a.caps),
			capability.SynthesisStatus(a.caps))

		return console.New(ctx, a.controller, rl, rl.Stdout()).Run()
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringVarP(&targetLang, "language", "l", "", "Initial target language (default from config)")
	sessionCmd.Flags().BoolVar(&checkLanguage, "check-language", false, "Warn when a translation does not look like the target language")
}
