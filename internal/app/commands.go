package app

import "go-td-sim/pkg/geom"

// Command — запрос от ввода к миру. Команды не выполняются сразу, а ждут
// начала следующего тика, чтобы не вмешиваться в проход по коллекциям.
type Command interface {
	apply(g *Game)
}

// PlaceTowerAt ставит башню с центром в (X, Y).
type PlaceTowerAt struct {
	X, Y float64
}

func (c PlaceTowerAt) apply(g *Game) {
	g.PlaceTower(geom.Pt(c.X, c.Y))
}

// RemoveTowerAt убирает первую башню, накрывающую (X, Y).
type RemoveTowerAt struct {
	X, Y float64
}

func (c RemoveTowerAt) apply(g *Game) {
	g.RemoveTower(geom.Pt(c.X, c.Y))
}

// Enqueue ставит команду в очередь до следующего Update.
func (g *Game) Enqueue(cmd Command) {
	g.commands = append(g.commands, cmd)
}

// PendingCommands — сколько команд ждёт следующего тика.
func (g *Game) PendingCommands() int {
	return len(g.commands)
}

func (g *Game) applyCommands() {
	if len(g.commands) == 0 {
		return
	}
	pending := g.commands
	g.commands = nil
	for _, cmd := range pending {
		cmd.apply(g)
	}
}
