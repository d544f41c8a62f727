package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mediaeduka/webramadhan/core/board"
	"github.com/mediaeduka/webramadhan/core/journal"
)

type boardApi struct {
	journalSvc *journal.Service
}

func registerBoardAPI(g *echo.Group, deps ServerDeps) {
	api := boardApi{journalSvc: deps.JournalSvc}

	// the leaderboard is the home page; no auth
	g.GET("/board", api.retrieve)
}

type BoardResponse struct {
	Leaderboard   []board.ClassRank `json:"leaderboard"`
	OverallWinner *board.ClassRank  `json:"overall_winner"`
}

// retrieve recomputes the board from the current journal snapshot.
func (api *boardApi) retrieve(ctx echo.Context) error {
	entries, err := api.journalSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying journals")
	}

	ranks := board.ComputeLeaderboard(entries)
	resp := BoardResponse{Leaderboard: ranks}
	if win, ok := board.OverallWinner(ranks); ok {
		resp.OverallWinner = &win
	}
	return ctx.JSON(http.StatusOK, resp)
}
