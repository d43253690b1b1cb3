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

var speakVoice string

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Play text aloud",
	Long: `Play text through the configured speech synthesizer (the backend
/text-to-speech endpoint or a local command such as espeak-ng).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput()
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("nothing to speak: input is empty")
		}

		a, err := newApp(false)
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
		c.Speak(context.Background(), text, speakVoice)

		if notice := c.State().Notice; notice != "" {
			return fmt.Errorf("%s", notice)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(speakCmd)

	speakCmd.Flags().StringVarP(&inputText, "text", "x", "", "Text to speak")
	speakCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File holding the text to speak")
	speakCmd.Flags().StringVarP(&targetLang, "language", "l", "", "Language of the text (default from config)")
	speakCmd.Flags().StringVar(&speakVoice, "voice", "", "Voice hint (default from config)")
}
