package core

import (
	"sort"
	"sync"

	"github.com/teamfit/teamfit/schema"
)

// BuildMatrix scores every (member, stream) pair with a bounded worker pool.
// Rows are ordered by ascending member id, columns follow plan order, so the
// matrix is identical across runs regardless of scheduling.
func BuildMatrix(members []schema.TeamMember, streams []schema.WorkStream, opts schema.Options) schema.ScoreMatrix {
	sorted := make([]schema.TeamMember, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	memberIDs := make([]string, len(sorted))
	for i, m := range sorted {
		memberIDs[i] = m.ID
	}
	streamIDs := make([]string, len(streams))
	for j, s := range streams {
		streamIDs[j] = s.ID
	}

	// Each job owns one row, so workers write to distinct slots without locks.
	rows := make([][]schema.ScoreCell, len(sorted))
	rowCh := make(chan int, len(sorted))
	var wg sync.WaitGroup

	for range max(opts.Workers, 1) {
		wg.Go(func() {
			for i := range rowCh {
				row := make([]schema.ScoreCell, len(streams))
				for j := range streams {
					row[j] = Score(&sorted[i], &streams[j], opts)
				}
				rows[i] = row
			}
		})
	}

	for i := range sorted {
		rowCh <- i
	}
	close(rowCh)
	wg.Wait()

	return schema.ScoreMatrix{
		MemberIDs: memberIDs,
		StreamIDs: streamIDs,
		Rows:      rows,
	}
}
