// Package commands implements the tscat command line: catalog lookups,
// validation, export and import, and the Discord lookup bot.
package commands
