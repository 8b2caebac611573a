// Package hclcatalog loads option catalogs from declarative HCL manifests.
//
// A manifest describes the option tree of a program:
//
//	flag "help" {
//	  abbrev      = "h"
//	  inheritable = true
//	}
//
//	command "build" {
//	  description = "compile the project"
//	  flag "verbose" { abbrev = "v" }
//	  option "out" {
//	    abbrev      = "o"
//	    description = "output path"
//	    default     = "a.out"
//	  }
//	  command "sub" {}
//	}
//
// "flag" blocks declare boolean options, "option" blocks declare key/value
// options, and "command" blocks nest arbitrarily. Multiple manifest files
// merge into one root catalog; duplicate names across files fail the load.
package hclcatalog
