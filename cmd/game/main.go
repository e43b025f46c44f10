// cmd/game/main.go
package main

func main() {
	Execute()
}
