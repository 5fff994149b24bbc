package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"strconv"
	"strings"

	"github.com/annikahug/cadenza/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	conditionFlag := flag.String("condition", "prosody", "presentation condition")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	session, err := c.Sessions.New(ctx, "")

	if err != nil {
		panic(err)
	}

	fmt.Println("Session: " + session.ID)
	fmt.Println("Order:   " + strings.Join(session.Conditions, ", "))
	fmt.Println()

	annotate(ctx, c, *conditionFlag)
}

// annotate runs the interactive loop: plain input replaces the working
// text, slash commands add marks, preview, or synthesize.
func annotate(ctx context.Context, c *client.Client, condition string) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

	var text string
	var marks []client.Mark

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			panic(err)
		}

		input = strings.TrimSpace(input)

		if !strings.HasPrefix(input, "/") {
			if input != "" {
				text = input
				marks = nil
			}

			continue LOOP
		}

		args := strings.Fields(input)

		switch strings.ToLower(args[0]) {
		case "/emphasis":
			if len(args) < 4 {
				output.WriteString("usage: /emphasis <start> <end> <level>\n")
				continue LOOP
			}

			marks = append(marks, client.Mark{
				Type:  "emphasis",
				Start: atoi(args[1]),
				End:   atoi(args[2]),
				Level: args[3],
			})

		case "/prosody":
			if len(args) < 4 {
				output.WriteString("usage: /prosody <start> <end> <pitch> [rate] [volume]\n")
				continue LOOP
			}

			mark := client.Mark{
				Type:  "prosody",
				Start: atoi(args[1]),
				End:   atoi(args[2]),
				Pitch: args[3],
			}

			if len(args) > 4 {
				mark.Rate = args[4]
			}

			if len(args) > 5 {
				mark.Volume = args[5]
			}

			marks = append(marks, mark)

		case "/break":
			if len(args) < 3 {
				output.WriteString("usage: /break <at> <duration_ms>\n")
				continue LOOP
			}

			marks = append(marks, client.Mark{
				Type:       "break",
				At:         atoi(args[1]),
				DurationMS: atoi(args[2]),
			})

		case "/marks":
			for i, m := range marks {
				output.WriteString(fmt.Sprintf("%2d) %+v\n", i+1, m))
			}

		case "/reset":
			marks = nil

		case "/preview":
			markup, err := c.Markups.New(ctx, client.MarkupRequest{
				Text:  text,
				Marks: marks,
			})

			if err != nil {
				output.WriteString(err.Error() + "\n")
				continue LOOP
			}

			output.WriteString(markup.Document + "\n")

		case "/synthesize":
			synthesis, err := c.Syntheses.New(ctx, client.SynthesizeRequest{
				Text:  text,
				Marks: marks,

				Condition: condition,
			})

			if err != nil {
				output.WriteString(err.Error() + "\n")
				continue LOOP
			}

			name := uuid.New().String()

			if ext, _ := mime.ExtensionsByType(synthesis.ContentType); len(ext) > 0 {
				name += ext[0]
			} else {
				name += ".mp3"
			}

			os.WriteFile(name, synthesis.Content, 0600)
			fmt.Println("Saved: " + name)

		default:
			output.WriteString("Unknown command\n")
		}

		output.WriteString("\n")
	}
}

func atoi(s string) int {
	val, _ := strconv.Atoi(s)
	return val
}
