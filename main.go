package main

import "minio-mcp/cmd"

func main() {
	cmd.Execute()
}
