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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/medtran/internal/detector"
	"github.com/valpere/medtran/internal/language"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the language of text",
	Long: `Detect the language of text locally (no backend call). Useful to check
patient input or a translation before sharing it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput()
		if err != nil {
			return err
		}

		det := detector.New(language.Codes()...)
		code, ok := det.DetectISO(text)
		if !ok {
			return fmt.Errorf("could not determine the language")
		}
		fmt.Printf("%s\t%s\n", code, language.Name(code))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(&inputText, "text", "x", "", "Text to inspect")
	detectCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File holding the text")
}
