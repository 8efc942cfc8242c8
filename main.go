/*
Copyright © 2026 Jesse Redmond
*/
package main

import "github.com/jsredmond/grue/cmd"

func main() {
	cmd.Execute()
}
