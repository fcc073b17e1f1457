package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/32bitkid/legend"
	"github.com/32bitkid/legend/present"
)

var flagDevice string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show a live frame in the terminal or on a framebuffer",
	Long: `Draw the scene every tick, cycling sprite frames and the palette band
set by animation.index and animation.count.

Controls (terminal):
  Q/Esc/Ctrl+C - Quit

Examples:
  legend preview --sprites hero.spr --text "Hello"
  legend preview --sprites hero.spr --fb /dev/fb0`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	addSceneFlags(previewCmd)
	previewCmd.Flags().StringVar(&flagDevice, "fb", "", "Framebuffer device instead of the terminal")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	s, err := loadScene(flagSprites)
	if err != nil {
		return err
	}
	text, err := sceneText(s)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var presenter present.Presenter
	if flagDevice != "" {
		fb, err := present.OpenFramebuffer(flagDevice)
		if err != nil {
			return err
		}
		presenter = fb
	} else {
		term, err := present.NewTerminal()
		if err != nil {
			return err
		}
		presenter = term

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go func() {
			for !term.PollQuit() {
			}
			cancel()
		}()
	}
	defer presenter.Close()

	logger := legend.Logger()
	width, height := s.graphics.Size()
	frame := make([]byte, width*height*4)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Animation.FPS))
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		s.draw(tick, text)
		if err := s.graphics.RenderTo(frame); err != nil {
			return err
		}
		if err := presenter.Present(frame, width, height); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			logger.Debug("preview stopped", "ticks", tick)
			return nil
		case <-ticker.C:
		}

		if cfg.Animation.Count > 0 {
			if err := s.palette.Animate(cfg.Animation.Index, cfg.Animation.Count); err != nil {
				return err
			}
		}
	}
}
