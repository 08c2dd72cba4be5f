// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var (
	descriptionFlags      = blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank
	descriptionExtensions = blackfriday.NoIntraEmphasis | blackfriday.Autolink |
		blackfriday.Strikethrough | blackfriday.HardLineBreak
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// RenderDescription converts a markdown video description into sanitized
// HTML. The HTML renderer keeps state between nodes, so each call gets its
// own; the bluemonday policies are safe for concurrent use.
func RenderDescription(source string) string {
	if source == "" {
		return ""
	}

	unsafe := blackfriday.Run([]byte(source),
		blackfriday.WithRenderer(blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: descriptionFlags,
		})),
		blackfriday.WithExtensions(descriptionExtensions),
	)
	return string(bytes.TrimSpace(ugcPolicy.SanitizeBytes(unsafe)))
}

// StripHTML removes every tag from s and returns plain text. Used on
// generated text before it is stored as a title or description.
func StripHTML(s string) string {
	return html.UnescapeString(string(bytes.TrimSpace(strictPolicy.SanitizeBytes([]byte(s)))))
}
