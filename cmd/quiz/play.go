package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/problems"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/session"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const localOwner = "local"

func newPlayCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a session in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := root.resolveSeed()
			if err != nil {
				return err
			}
			p := &player{
				machine: session.NewMachine(problems.NewGenerator(seed), seed),
				in:      bufio.NewScanner(cmd.InOrStdin()),
				out:     cmd.OutOrStdout(),
				sleep:   time.Sleep,
			}
			return p.play()
		},
	}
}

// player drives a session from line-based input.
// Scheduled events are applied in order once their delay has been slept.
type player struct {
	machine *session.Machine
	in      *bufio.Scanner
	out     io.Writer
	sleep   func(time.Duration)
	state   types.SessionState
}

func (p *player) play() error {
	start := types.NewSessionState(uuid.NewString(), localOwner, time.Now().UnixMilli())
	state, events, err := p.machine.Start(*start)
	if err != nil {
		return err
	}
	p.state = state
	p.handle(events)

	for {
		switch p.state.Phase {
		case types.PhasePlaying:
			if !p.state.IsAnswered {
				fmt.Fprintf(p.out, "\nLevel %d/%d  Question %d/%d  Lives %d  Score %d\n",
					p.state.Level, constants.MaxLevel, p.state.QuestionIndex, constants.QuestionsPerLevel,
					p.state.Lives, p.state.Score)
				fmt.Fprintf(p.out, "%s ", p.state.Problem.Prompt())
				line, ok := p.readLine()
				if !ok {
					return nil
				}
				state, events, err := p.machine.SubmitAnswer(p.state, line)
				if err != nil {
					return err
				}
				p.state = state
				if p.state.IsAnswered {
					p.printFeedback()
				}
				p.handle(events)
				continue
			}
			if err := p.apply(p.machine.Advance(p.state)); err != nil {
				return err
			}
		case types.PhaseLevelCleared:
			fmt.Fprintf(p.out, "\nLevel %d cleared with %d points. Press enter for level %d (+%d life), q to quit. ",
				p.state.Level, p.state.LevelScore, p.state.Level+1, constants.LevelClearedBonusLives)
			if _, ok := p.readLine(); !ok {
				return nil
			}
			if err := p.apply(p.machine.StartNextLevel(p.state)); err != nil {
				return err
			}
		case types.PhaseFinished, types.PhaseGameOver:
			if p.state.Phase == types.PhaseFinished {
				fmt.Fprintf(p.out, "\nAll levels done. Final score %d.\n", p.state.Score)
			} else {
				fmt.Fprintf(p.out, "\nGame over. Final score %d.\n", p.state.Score)
			}
			fmt.Fprint(p.out, "Press enter to play again, q to quit. ")
			if _, ok := p.readLine(); !ok {
				return nil
			}
			if err := p.apply(p.machine.Restart(p.state)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected phase %s", p.state.Phase)
		}
	}
}

func (p *player) apply(state types.SessionState, events []types.ScheduledEvent, err error) error {
	if err != nil {
		return err
	}
	p.state = state
	p.handle(events)
	return nil
}

// handle applies the celebration end right away, it has no visible effect
// in the terminal. Game over waits for its delay so the feedback stays readable.
func (p *player) handle(events []types.ScheduledEvent) {
	for _, event := range events {
		if event.Kind == types.EventGameOver {
			p.sleep(event.Delay)
		}
		p.state, _ = p.machine.HandleEvent(p.state, event)
	}
}

func (p *player) printFeedback() {
	if p.state.IsCorrect {
		fmt.Fprintf(p.out, "%s\n", p.state.Feedback)
		return
	}
	fmt.Fprintf(p.out, "%s The answer was %d.\n", p.state.Feedback, p.state.Problem.Answer)
}

// readLine returns false on end of input or when the player quits.
func (p *player) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	line := strings.TrimSpace(p.in.Text())
	if strings.EqualFold(line, "q") {
		return "", false
	}
	return line, true
}
