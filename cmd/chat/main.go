// Command chat runs the listing conversation in a terminal, one line per turn.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"voice-listing-go/internal/app"
	"voice-listing-go/internal/config"
	"voice-listing-go/internal/language"
	"voice-listing-go/internal/logger"
	"voice-listing-go/internal/types"
)

func main() {
	lang := flag.String("lang", "", "language code (en, hi, mr, ta, te, bn, gu, kn); defaults to DEFAULT_LANGUAGE")
	ask := flag.Bool("ask", false, "start by asking for a language")
	verbose := flag.Bool("v", false, "log to stdout")
	flag.Parse()

	log := logger.Discard()
	if *verbose {
		log = logger.New()
	}
	cfg := config.Load(log.Component("config"))

	ctx := context.Background()
	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chat:", err)
		os.Exit(1)
	}
	defer a.Close()

	var st types.ConversationState
	switch {
	case *ask:
		st = a.Engine.InitLanguageSelection()
	case *lang == "":
		st = a.Engine.InitConversation(app.DefaultLanguage(cfg))
	default:
		l, ok := language.ByCode(*lang)
		if !ok {
			fmt.Fprintf(os.Stderr, "chat: unsupported language %q\n", *lang)
			os.Exit(2)
		}
		st = a.Engine.InitConversation(l)
	}
	say(a.Engine.Opening(st))

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "/quit" || line == "/exit" {
			return
		}
		res := a.Engine.ProcessInput(ctx, st, line)
		say(res.Response)
		res = drain(ctx, a.Engine, res, say)
		st = res.State
		if !res.Response.ExpectsResponse {
			return
		}
	}
}

type engine interface {
	ProcessInput(ctx context.Context, st types.ConversationState, utterance string) types.TurnResult
}

// drain plays the turns that wait for no input, so "yes" at confirmation
// runs straight through broadcasting to success.
func drain(ctx context.Context, eng engine, res types.TurnResult, out func(types.Response)) types.TurnResult {
	for i := 0; i < 3 && !res.Response.ExpectsResponse && res.State.Stage != types.StageSuccess; i++ {
		res = eng.ProcessInput(ctx, res.State, "")
		out(res.Response)
	}
	return res
}

func say(r types.Response) {
	fmt.Printf("[%s] %s\n", r.Stage, r.Text)
	if len(r.Options) > 0 {
		fmt.Printf("    (%s)\n", strings.Join(r.Options, " / "))
	}
	if r.CatalogItem != nil {
		c := r.CatalogItem
		fmt.Printf("    listing %s: %s, %.0f %s at ₹%.2f/%s, grade %s\n",
			c.ID, c.Name, c.Quantity.Value, c.Quantity.Unit, c.Price.Value, c.Price.Unit, c.Grade)
	}
}
