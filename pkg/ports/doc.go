/*
Package ports defines the interfaces that decouple the menu bot core from its
adapters.

# Key Interfaces

  - CatalogLoader: supplies the raw exchange records the hierarchy is built from
    (file, memory or Redis).
  - Navigator: the navigation engine as seen by the chat session.
  - Responder: the chat session as seen by transports (HTTP, MCP, terminal).
*/
package ports
