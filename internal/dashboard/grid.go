package dashboard

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

const DefaultSkeletonRows = 6

// Actions lists the row buttons a grid shows.
type Actions struct {
	Edit      bool `json:"edit"`
	Delete    bool `json:"delete"`
	Archive   bool `json:"archive"`
	Unarchive bool `json:"unarchive"`
}

// ActionsFor gates row actions by status. Only completed bookings can be archived.
func ActionsFor(status string, archived bool) Actions {
	return Actions{
		Edit:      !archived,
		Delete:    true,
		Archive:   !archived && status == StatusCompleted,
		Unarchive: archived,
	}
}

// StatusColor is the tag colour of a booking status.
func StatusColor(status string) string {
	switch status {
	case StatusPending:
		return "amber"
	case StatusConfirmed:
		return "blue"
	case StatusCompleted:
		return "green"
	case StatusCancelled:
		return "red"
	case StatusNoShow:
		return "gray"
	default:
		return "slate"
	}
}

// Grid is the render state of a list: skeleton rows while the first load runs, an empty state
// when there is nothing to show, rows otherwise.
type Grid[R any] struct {
	Skeleton     bool   `json:"skeleton"`
	SkeletonRows int    `json:"skeleton_rows,omitempty"`
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"empty_message,omitempty"`
	Rows         []R    `json:"rows"`
}

// NewGrid builds the grid state for rows.
func NewGrid[R any](loading bool, rows []R, skeletonRows int, emptyMessage string) Grid[R] {
	if rows == nil {
		rows = []R{}
	}

	grid := Grid[R]{Rows: rows}

	switch {
	case loading && len(rows) == 0:
		if skeletonRows <= 0 {
			skeletonRows = DefaultSkeletonRows
		}

		grid.Skeleton = true
		grid.SkeletonRows = skeletonRows
	case len(rows) == 0:
		grid.Empty = true
		grid.EmptyMessage = emptyMessage
	}

	return grid
}
