package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

type Game struct {
	Board  *Board
	Turn   Player
	Status string
}

func NewGame() *Game {
	return &Game{
		Board:  NewBoard(),
		Turn:   PlayerBlack,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
