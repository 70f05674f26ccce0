/*
Package session implements the chat session that sits between a transport and
the navigation engine.

A Chat greets the user on first contact, turns rejected selections into an
"unavailable" reply that re-shows the current menu, and hides internal failures
behind a generic message. One Chat is shared by the whole process; a single
mutex makes every turn atomic with respect to concurrent callers.
*/
package session
