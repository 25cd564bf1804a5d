// Package app is the composition root of showtrack.
//
// Run loads the config and preferences, points the standard logger at the
// log file, opens the local store, optionally imports an IMDb dataset, starts
// the data manager worker on its own store connection, builds the Trakt
// client and the App state machine, then runs the UI until it stops:
//
//	Run()
//	 ├─> config.Load / prefs.Load
//	 ├─> tea.LogToFile          log lines stay off the alternate screen
//	 ├─> store.Open             single-row writes from the interactive loop
//	 ├─> importTitles           only with -import
//	 ├─> datamanager.Init       worker owns a second store connection
//	 ├─> trakt.NewClient
//	 ├─> state.New
//	 └─> ui.Run                 blocks
//
// Errors from any step are returned to main, which prints them and exits 1.
package app
