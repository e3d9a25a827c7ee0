package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/brickscan/internal/ui"
)

func newConfigCommand(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved startup configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opt)
			if err != nil {
				return err
			}
			t := ui.Current()
			s := cfg.InitialSettings()

			beep := "off"
			if s.BeepEnabled {
				beep = "on"
			}
			expected := cfg.License.ExpectedHost
			if expected == "" {
				expected = ui.C(t.Muted, "(none)")
			}
			allowed := gateFor(cfg).Allow()
			var state string
			switch {
			case cfg.License.ExpectedHost == "":
				state = ui.C(t.Pending, "not required")
			case allowed:
				state = ui.C(t.Success, "active")
			default:
				state = ui.C(t.Error, "not activated")
			}

			lines := []string{
				ui.C(t.Title, "brickscan "+Version),
				"",
				row("prefix", strconv.Quote(s.Prefix)),
				row("code length", strconv.Itoa(s.CodeLength)),
				row("beep", beep),
				row("toast", cfg.UI.ToastDuration().String()),
				"",
				row("host", cfg.License.ResolveHost()),
				row("expected host", expected),
				row("activation", state),
			}
			ui.PrintPanel(cmd.OutOrStdout(), lines)
			if !allowed {
				ui.Fail(cmd.ErrOrStderr(), "scans will show empty bricks on this host")
				return nil
			}
			ui.OK(cmd.OutOrStdout(), "ready to scan")
			return nil
		},
	}
}

func row(k, v string) string {
	return fmt.Sprintf("%s %s", ui.C(ui.Current().Accent, fmt.Sprintf("%-14s", k)), v)
}
