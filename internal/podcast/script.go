// Package podcast turns markdown-flavored dialogue scripts into stitched
// speech audio: speaker detection, per-turn text cleaning, and sequential
// synthesis with silence padding between turns.
package podcast

import (
	"regexp"
	"strings"
)

// Turn is one speaker's contribution to a dialogue script, in script order.
type Turn struct {
	Speaker string `json:"speaker"`
	Voice   string `json:"voice,omitempty"`
	Text    string `json:"text"`
}

// speakerPatterns cover the textual conventions scripts arrive in, tried in
// priority order: bold markdown labels, HOST/GUEST, "Speaker N", then a
// generic "Name:" prefix. The first pattern yielding at least two labels
// wins (a dialogue needs two turns to be a dialogue).
var speakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^[ \t]*\*\*([A-Za-z][A-Za-z0-9 ]{0,24}?)[ \t]*:?\*\*[ \t]*:?[ \t]*`),
	regexp.MustCompile(`(?m)^[ \t]*(HOST|GUEST)[ \t]*:[ \t]*`),
	regexp.MustCompile(`(?mi)^[ \t]*(speaker[ \t]+\d+)[ \t]*:[ \t]*`),
	regexp.MustCompile(`(?m)^[ \t]*([A-Z][A-Za-z]{1,16})[ \t]*:[ \t]*`),
}

// ParseScript splits a dialogue script into ordered speaker turns with
// speech-ready text. Speaker names are normalized to upper case. A script
// in which no convention matches twice yields nil.
func ParseScript(script string) []Turn {
	for _, re := range speakerPatterns {
		matches := re.FindAllStringSubmatchIndex(script, -1)
		if len(matches) < 2 {
			continue
		}

		var turns []Turn
		for i, m := range matches {
			speaker := strings.ToUpper(strings.Join(strings.Fields(script[m[2]:m[3]]), " "))
			end := len(script)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			text := CleanForSpeech(script[m[1]:end])
			if text == "" {
				continue
			}
			turns = append(turns, Turn{Speaker: speaker, Text: text})
		}
		if len(turns) >= 2 {
			return turns
		}
	}
	return nil
}
