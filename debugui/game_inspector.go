package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// SpawnRow is one line of the spawn histogram.
type SpawnRow struct {
	Type  tetris.PieceType
	Count int
	Share float32
}

// SpawnHistogram returns one row per piece type with its share of all
// spawned pieces.
func SpawnHistogram(stats *tetris.Stats) []SpawnRow {
	total := stats.TotalSpawned()
	rows := make([]SpawnRow, 0, len(tetris.PieceTypes()))
	for _, t := range tetris.PieceTypes() {
		row := SpawnRow{Type: t, Count: stats.Spawned(t)}
		if total > 0 {
			row.Share = float32(row.Count) / float32(total)
		}
		rows = append(rows, row)
	}
	return rows
}

// DropProgress returns how far the drop counter has advanced toward the drop
// interval, clamped to [0, 1].
func DropProgress(s tetris.Session) float32 {
	if s.DropInterval <= 0 {
		return 0
	}
	p := float32(s.DropCounter) / float32(s.DropInterval)
	return min(max(p, 0), 1)
}

func formatQueue(next []tetris.PieceType) string {
	names := make([]string, len(next))
	for i, t := range next {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

// GameInspector shows the session, the upcoming queue and lifetime counters
// of a game, and offers pause and restart controls.
type GameInspector struct {
	Game *tetris.Game

	// Paused is toggled by the inspector; gravity systems should honor it.
	Paused bool
}

func (gi *GameInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(430, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 420), imgui.CondOnce)
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := gi.Game
	session := game.Session()

	switch game.State() {
	case tetris.StateRunning:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	case tetris.StateTopOut:
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "TOP OUT")
	default:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), strings.ToUpper(game.State().String()))
	}

	imgui.Checkbox("Paused", &gi.Paused)
	imgui.SameLine()
	if imgui.Button("Restart") {
		game.Restart()
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", session.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", session.Lines))
	imgui.Text(fmt.Sprintf("Level: %d", session.Level))
	imgui.Text(fmt.Sprintf("Drop Interval: %s", session.DropInterval))
	imgui.ProgressBarV(DropProgress(session), imgui.NewVec2(-1, 0),
		fmt.Sprintf("%s/%s", session.DropCounter, session.DropInterval))

	pos := game.Position()
	if p := game.Piece(); p != nil {
		imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d), ghost row %d", p.Type, pos.X, pos.Y, game.GhostY()))
	}
	imgui.Text(fmt.Sprintf("Next: %s", formatQueue(game.Next(7))))
	imgui.Text(fmt.Sprintf("Queue Length: %d", game.QueueLen()))

	stats := game.Stats()
	if imgui.TreeNodeStr("Spawn Histogram") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Piece")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Share")
			imgui.TableHeadersRow()

			for _, row := range SpawnHistogram(stats) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.Type.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Count))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f%%", row.Share*100))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Counters") {
		imgui.BulletText(fmt.Sprintf("Locks: %d", stats.Locks))
		imgui.BulletText(fmt.Sprintf("Hard Drops: %d", stats.HardDrops))
		imgui.BulletText(fmt.Sprintf("Top Outs: %d", stats.TopOuts))
		imgui.BulletText(fmt.Sprintf("Restarts: %d", stats.Restarts))
		imgui.TreePop()
	}

	imgui.End()
}
