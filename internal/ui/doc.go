// Package ui contains the Bubble Tea program for the shader manager: a
// three-tab terminal client (home, shaders, settings) for the local GLFS
// backend.
//
// Message flow:
//   - Init runs the bootstrap action. When its BootstrapResult arrives the
//     model wires the key map, requests the catalog, applies the theme and
//     shows the home tab. A failed readiness probe stops there and nothing
//     is wired.
//   - Key presses resolve to a trigger through the per-tab key map and the
//     actions registry. The command bus runs the action, whose backend call
//     happens in the returned tea.Cmd.
//   - Every action finishes with an ActionResult. The dispatcher applies it
//     to the configuration and catalog stores, then the model refreshes the
//     rows, the settings form and the status line from it.
//
// State ownership:
//   - internal/state holds the configuration record and the generation-
//     tagged catalog snapshot; internal/ui/state holds the row list, the
//     filter and the tab selection.
//   - The status line is a single value; the last result to arrive replaces
//     it.
package ui
