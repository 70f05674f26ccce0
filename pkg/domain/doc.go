/*
Package domain contains the core model of the menu bot.

It defines the node hierarchy (Root, Category, Leaf), the ordered option
mappings that connect them, the three-tier Render view and the error taxonomy.
The package is kept pure and free of I/O so that loaders, transports and the
navigation engine can all depend on it.

# Key Entities

  - Hierarchy: owns every node; built once through a Builder.
  - Node: capability interface implemented by Root, Category and Leaf.
  - Options: per-node ordered label mapping with two bindable shortcut slots.
  - Render: prompt, primary choices and an optional shortcut block.
  - State: the engine cursor and the path taken.
*/
package domain
