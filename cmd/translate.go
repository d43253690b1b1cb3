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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	inputText     string
	inputFile     string
	outputFile    string
	targetLang    string
	checkLanguage bool
)

// readInput returns --text, or the contents of --input when --text is empty.
func readInput() (string, error) {
	if inputText != "" {
		return inputText, nil
	}
	if inputFile == "" {
		return "", fmt.Errorf("either --text or --input is required")
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// writeOutput prints result, and also writes it to --output when set.
func writeOutput(result string) error {
	if outputFile != "" {
		if inputFile != "" && outputFile == inputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}
		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(result), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	fmt.Println(result)
	return nil
}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate patient text into the target language",
	Long: `Send text to the backend /translate endpoint and print the translation.

Examples:
  medtran translate --text "I am allergic to penicillin" --language fr
  medtran translate --input note.txt --output note.es.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput()
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("nothing to translate: input is empty")
		}

		a, err := newApp(checkLanguage)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		c := a.controller
		if targetLang != "" {
			if err := c.SetLanguage(targetLang); err != nil {
				return err
			}
		}
		c.SetInput(text)

		st := c.State()
		c.Translate(context.Background(), st.InputText, st.TargetLanguage)

		st = c.State()
		if st.TranslationErr != nil {
			return fmt.Errorf("%s: %w", st.TranslatedText, st.TranslationErr)
		}
		return writeOutput(st.TranslatedText)
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputText, "text", "x", "", "Text to translate")
	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Also write the translation to this file")
	translateCmd.Flags().StringVarP(&targetLang, "language", "l", "", "Target language code (default from config)")
	translateCmd.Flags().BoolVar(&checkLanguage, "check-language", false, "Warn when the result does not look like the target language")
}
