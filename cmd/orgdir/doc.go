// Command orgdir sorts the files directly inside a directory into category
// subdirectories chosen by file extension.
//
// The root command organizes a directory (the working directory by default),
// asking for confirmation unless --yes or --dry-run is given. Subcommands
// list the resolved categories, manage the configuration file, and show the
// journal of past runs.
package main
