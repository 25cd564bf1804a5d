// Package state implements the application state machine.
//
// # Overview
//
// App owns the UI mode, the selection cursors, and the in-memory show and
// season lists. The renderer reads its exported fields; only App methods,
// called from the single interactive loop, mutate them.
//
// # Modes
//
//	Initializing ──Tick()──→ MainView ──EnterShowDetails()──→ SeasonView
//	                           │  ↑ ←──────LeaveSeasonView()────────┘
//	                           │  │
//	             StartQuery()/EndQuery()   ToggleHelp()
//	                           ↓  │
//	                  Querying      HelpWindow
//
// Tick queries the data manager while the show list is empty. A lost worker
// fails the tick with ErrDataManagerUnavailable instead of leaving the App in
// Initializing.
//
// # Selection
//
// Selection is empty only while its list is empty or before the first
// navigation. Forward moves saturate at the last index and backward moves at
// zero. With nothing selected, MoveBackward selects the last show while
// SeasonBackward selects the first season. The scroll position follows the
// selected show.
//
// # Detail lookups
//
// EnterShowDetails runs a lookup synchronously. The UI splits it into
// BeginShowDetails (on the loop), FetchShowDetails (in a command), and
// ApplyShowDetails (back on the loop) and ignores input while Loading is set,
// so at most one lookup is outstanding.
//
// # Errors
//
//   - Lookup failure: logged, App stops running, error returned.
//   - Persisting merged show details: logged and ignored.
//   - Reconciling seasons or persisting a status change: logged and returned.
package state
