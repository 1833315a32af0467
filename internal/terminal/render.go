// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package terminal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	title        = " Counter App Tutorial "
	minWidth     = 2
	minHeight    = 2
	defaultWidth = 80
	defaultHeight = 24
)

// Frame is the state rendered on one draw
type Frame struct {
	Counter uint8
}

// styles holds the styles of the counter panel
type styles struct {
	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer) styles {
	return styles{
		title: renderer.NewStyle().Bold(true),
		key:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		value: renderer.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// instructions renders the bottom line of the panel
func (s styles) instructions() string {
	return " Decrement " + s.key.Render("<Left>") +
		" Increment " + s.key.Render("<Right>") +
		" Quit " + s.key.Render("<Q> ")
}

// view renders frame as a thick bordered panel of width x height cells.
// The title is centered in the top border, the instructions in the bottom
// border and the value on the first inner line.
func (s styles) view(frame Frame, width, height int) string {
	width = max(width, minWidth)
	height = max(height, minHeight)

	border := lipgloss.ThickBorder()
	inner := width - 2

	top := border.TopLeft + borderLine(s.title.Render(title), inner, border.Top) + border.TopRight
	bottom := border.BottomLeft + borderLine(s.instructions(), inner, border.Bottom) + border.BottomRight

	value := "Value: " + s.value.Render(strconv.Itoa(int(frame.Counter)))
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < height-2; i++ {
		content := ""
		if i == 0 {
			content = ansi.Truncate(value, inner, "")
		}
		rows = append(rows, border.Left+lipgloss.PlaceHorizontal(inner, lipgloss.Center, content)+border.Right)
	}
	rows = append(rows, bottom)

	return strings.Join(rows, "\n")
}

// borderLine centers text on a line of fill runes
func borderLine(text string, width int, fill string) string {
	text = ansi.Truncate(text, width, "")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text, lipgloss.WithWhitespaceChars(fill))
}
