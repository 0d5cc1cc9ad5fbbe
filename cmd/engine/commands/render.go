package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/battlesnakeio/arena/geom"
	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/worker"
	"github.com/battlesnakeio/arena/world"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	defaultColor = termbox.ColorDefault
	wallColor    = termbox.ColorWhite
	left         = 2
	top          = 2
)

// termboxColors are indexed by which of red, green and blue dominate.
var termboxColors = [8]termbox.Attribute{
	termbox.ColorWhite,
	termbox.ColorBlue,
	termbox.ColorGreen,
	termbox.ColorCyan,
	termbox.ColorRed,
	termbox.ColorMagenta,
	termbox.ColorYellow,
	termbox.ColorWhite,
}

// termboxColor maps a "#rrggbb" snake colour to the nearest of the eight
// basic terminal colours. Channels within a quarter of the brightest one
// count as lit.
func termboxColor(c rules.Color) termbox.Attribute {
	hex := strings.TrimPrefix(string(c), "#")
	if len(hex) != 6 {
		return termbox.ColorWhite
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return termbox.ColorWhite
	}
	rgb := [3]uint64{v >> 16 & 0xff, v >> 8 & 0xff, v & 0xff}
	peak := rgb[0]
	for _, ch := range rgb[1:] {
		if ch > peak {
			peak = ch
		}
	}
	idx := 0
	for _, ch := range rgb {
		idx <<= 1
		if peak > 0 && ch*4 >= peak*3 {
			idx |= 1
		}
	}
	return termboxColors[idx]
}

var renderPlay = false

func init() {
	renderCmd.Flags().BoolVarP(&renderPlay, "play", "p", renderPlay, "steer the first snake with the arrow keys")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "runs one round live in the terminal",
	Run: func(*cobra.Command, []string) {
		cfg, err := loadRound()
		if err != nil {
			log.WithError(err).Fatal("unable to load round")
		}
		if err := cfg.Validate(); err != nil {
			log.WithError(err).Fatal("invalid round")
		}
		if err := renderRound(cfg.Arena.Box(), cfg.TickRate, func(keys *keyboard) *rules.Round {
			if renderPlay {
				return worker.NewRound("render", cfg, world.New(), keys)
			}
			return worker.NewRound("render", cfg, world.New())
		}); err != nil {
			log.WithError(err).Fatal("render failed")
		}
	},
}

// keyboard steers toward the last arrow key pressed.
type keyboard struct {
	yaw float64
	set bool
}

func (k *keyboard) Yaw(head rules.Segment) float64 {
	if !k.set {
		return head.Yaw
	}
	return k.yaw
}

func (k *keyboard) press(key termbox.Key) {
	switch key {
	case termbox.KeyArrowUp:
		k.yaw = 0
	case termbox.KeyArrowDown:
		k.yaw = -180
	case termbox.KeyArrowLeft:
		k.yaw = 90
	case termbox.KeyArrowRight:
		k.yaw = -90
	default:
		return
	}
	k.set = true
}

func renderRound(box geom.Box, tickRate int, build func(*keyboard) *rules.Round) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	keys := &keyboard{}
	round := build(keys)
	defer round.Close()

	if tickRate <= 0 {
		tickRate = 20
	}
	interval := time.Second / time.Duration(tickRate)
	cycle := time.NewTicker(interval)
	defer cycle.Stop()

	eventQueue := setupEventQueue()
	paused := false

	if err := render(box, round); err != nil {
		return err
	}
	for !round.Over() {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc:
				return nil
			case termbox.KeySpace:
				paused = !paused
			default:
				keys.press(ev.Key)
			}
		case <-cycle.C:
			if paused {
				continue
			}
			round.Step()
			if err := render(box, round); err != nil {
				return err
			}
		}
	}

	tbprint(left, 0, defaultColor, defaultColor, fmt.Sprintf("Round over after %d turns. Press any key to exit...", round.Turn()))
	if err := termbox.Flush(); err != nil {
		return err
	}
	<-eventQueue
	return nil
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

func render(box geom.Box, round *rules.Round) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	size := box.Size()
	renderTitle(round.Turn())
	renderBoard(size.X, size.Z)
	for i, s := range round.Snakes() {
		color := termboxColor(s.Color())
		renderSnake(box, s, color)

		text := fmt.Sprintf("%s length %d kills %d", s.Owner(), s.Length(), s.Kills())
		if s.Dead() {
			text += " - dead"
		}
		tbprint(left+size.X+5, top+i*2, color, defaultColor, text)
	}
	return termbox.Flush()
}

// renderSnake draws the arena top down, +Z pointing up the screen.
func renderSnake(box geom.Box, s *rules.Snake, color termbox.Attribute) {
	for i, seg := range s.Segments() {
		c := seg.Pos.Floor()
		if !box.ContainsCell(geom.Cell{X: c.X, Y: box.Min.Y, Z: c.Z}) {
			continue
		}
		ch := ' '
		if i == 0 {
			ch = '@'
		}
		termbox.SetCell(left+1+c.X-box.Min.X, top+1+box.Max.Z-c.Z, ch, defaultColor, color)
	}
}

func renderBoard(w, h int) {
	wall := termbox.Cell{Ch: ' ', Fg: wallColor, Bg: wallColor}
	fill(left, top, w+2, 1, wall)
	fill(left, top+h+1, w+2, 1, wall)
	fill(left, top+1, 1, h, wall)
	fill(left+w+1, top+1, 1, h, wall)
}

func renderTitle(turn int64) {
	tbprint(left, 0, defaultColor, defaultColor, fmt.Sprintf("Snake arena - Turn %d", turn))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
