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
	"strings"

	"github.com/spf13/cobra"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine a medical transcription",
	Long: `Send a transcription to the backend /refine-transcription endpoint and
print the refined medical text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput()
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("nothing to refine: input is empty")
		}

		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		a.controller.Refine(context.Background(), text)

		st := a.controller.State()
		if st.RefinementErr != nil {
			return fmt.Errorf("%s: %w", st.RefinedText, st.RefinementErr)
		}
		return writeOutput(st.RefinedText)
	},
}

func init() {
	rootCmd.AddCommand(refineCmd)

	refineCmd.Flags().StringVarP(&inputText, "text", "x", "", "Transcription to refine")
	refineCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File holding the transcription")
	refineCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Also write the refined text to this file")
}
