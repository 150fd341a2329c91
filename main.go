package main

import "bucket-sync/cmd"

func main() {
	cmd.Execute()
}
