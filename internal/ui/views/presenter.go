package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/keaview/internal/session"
)

// NoticeText is the one-line status shown for a session notice.
func NoticeText(n session.Notice) string {
	switch n.Kind {
	case session.NoticeConnected:
		return pterm.Green(fmt.Sprintf("connected (#%d)", n.Connection))
	case session.NoticeDisconnected:
		if n.Err != nil {
			return pterm.Yellow(fmt.Sprintf("disconnected: %v", n.Err))
		}
		return pterm.Yellow("disconnected")
	case session.NoticeDesync:
		return pterm.Red("out of sync, reloading")
	case session.NoticeSettled:
		return pterm.Green("up to date")
	case session.NoticeDecodeError:
		return pterm.Yellow(fmt.Sprintf("dropped bad frame: %v", n.Err))
	default:
		return ""
	}
}

// LivePresenter redraws the mirror in place after every change.
type LivePresenter struct {
	area   *pterm.AreaPrinter
	status string
	last   string
	// layout names the last event that inserted, removed or moved rows
	layout string
}

func NewLivePresenter() (*LivePresenter, error) {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return nil, err
	}
	return &LivePresenter{area: area, status: pterm.Gray("connecting")}, nil
}

func (p *LivePresenter) Render(ctx *session.Context) {
	out, err := SrenderMirror(ctx)
	if err != nil {
		out = pterm.Error.Sprintln(err)
	}
	p.last = out
	if ctx.Change != nil && ctx.Change.Structural {
		p.layout = ctx.Change.Event.Method
	}
	p.update()
}

func (p *LivePresenter) Notify(n session.Notice) {
	p.status = NoticeText(n)
	p.update()
}

func (p *LivePresenter) Stop() {
	_ = p.area.Stop()
}

func (p *LivePresenter) update() {
	footer := p.status
	if p.layout != "" {
		footer += pterm.Gray("  last layout change: " + p.layout)
	}
	p.area.Update(p.last + "\n" + footer + "\n")
}

// NoticePresenter prints connection problems and stays silent otherwise. It
// suits one-shot commands and the interactive prompt loop, which render on
// demand.
type NoticePresenter struct {
	Verbose bool
}

func (p *NoticePresenter) Render(*session.Context) {}

func (p *NoticePresenter) Notify(n session.Notice) {
	switch n.Kind {
	case session.NoticeDesync:
		pterm.Warning.Println("Out of sync with the server, reloading")
	case session.NoticeDisconnected:
		if n.Err != nil {
			pterm.Warning.Printf("Disconnected: %v\n", n.Err)
		}
	default:
		if p.Verbose {
			pterm.Info.Println(NoticeText(n))
		}
	}
}
