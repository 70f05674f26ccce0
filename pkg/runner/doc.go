/*
Package runner implements the terminal conversation loop for the menu bot.

It acts as the bridge between a Responder (the chat session) and a terminal
or pipe. Every line read is sanitized (size limit, UTF-8, control characters)
before it reaches the session.

# Key Components

  - Runner: The loop that greets, reads, answers and stops on EOF or "exit".
  - IOHandler: Decouples how responses are shown (plain text, glamour, JSON Lines).
  - TextHandler: A standard implementation for interactive CLI usage.
  - JSONHandler: One JSON array per response, for scripted clients.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx, bot); err != nil {
		log.Fatal(err)
	}
*/
package runner
