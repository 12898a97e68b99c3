// Package commands defines the langlearn CLI and loads the vocabulary file for
// subcommands.
//
// Commands
//
//   - list     Print the numbered entries
//   - add      Add an entry
//   - update   Replace a numbered entry
//   - remove   Delete a numbered entry
//   - new      Write an empty vocabulary file
//   - export   Write the entries as lang, csv or yaml
//   - tui      Edit the vocabulary in the terminal
//
// # Implementation
//
// The root command reads the configuration (flags, environment, config file)
// and loads the vocabulary file into a store before any subcommand runs.
// Commands that change the store write the file back before returning.
package commands
