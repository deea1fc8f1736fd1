package views

import (
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"riskdash/internal/styles"
)

const logoViewName = "logoView"

// ASCII art for "riskdash" (compact).
const logoText = `
      _     _       _           _
 _ __(_)___| | ____| | __ _ ___| |__
| '__| / __| |/ / _` + "`" + ` |/ _` + "`" + ` / __| '_ \
| |  | \__ \   < (_| | (_| \__ \ | | |
|_|  |_|___/_|\_\__,_|\__,_|___/_| |_|
`

// LogoHeight is the y1-y0 span the logo view needs.
func LogoHeight() int {
	return strings.Count(strings.Trim(logoText, "\n"), "\n") + 2
}

// RenderLogo draws the ASCII logo in the bottom-left area.
func RenderLogo(g *gocui.Gui, x0, y0, x1, y1 int) error {
	if v, err := g.SetView(logoViewName, x0, y0, x1, y1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		v.FgColor = styles.FrameFg
		v.BgColor = styles.ViewBg
		v.Title = " riskdash "
		fmt.Fprint(v, strings.Trim(logoText, "\n"))
	}
	return nil
}
