package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the chatbot banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`       _           _   _           _   `, "#818cf8"},
		{`   ___| |__   __ _| |_| |__   ___ | |_ `, "#a78bfa"},
		{`  / __| '_ \ / _' | __| '_ \ / _ \| __|`, "#c084fc"},
		{` | (__| | | | (_| | |_| |_) | (_) | |_ `, "#e879f9"},
		{`  \___|_| |_|\__,_|\__|_.__/ \___/ \__|`, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
