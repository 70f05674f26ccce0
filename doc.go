/*
Package chatbot is a menu-driven stock chatbot.

A catalog of stock exchanges and their top stocks is compiled once into a fixed
node hierarchy: a Root listing the exchanges, one Category per exchange listing
its stocks, and one Leaf per stock showing its price. A conversation is a cursor
over that hierarchy. The user answers every menu with one of the offered labels;
anything else is answered with an "unavailable" note and the same menu.

Every node but the root also offers two shortcuts, "Menu" and "Go back". They are
bound the first time a node is entered: "Menu" to the root, "Go back" to the node
the user came from. Later visits never rebind them.

# Usage

	bot, err := chatbot.New(ctx, "data/stock-data.json")
	if err != nil {
		log.Fatal(err)
	}

	resp := bot.Respond(ctx, "")     // welcome + exchange list
	resp = bot.Respond(ctx, "NYSE")  // NYSE's stocks + shortcuts
	fmt.Println(resp.Messages()...)

The same Bot is served over HTTP (pkg/adapters/http), MCP (pkg/adapters/mcp)
and the terminal (pkg/runner) by the chatbot command.
*/
package chatbot
