package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSort_NewestFirstIsDefault(t *testing.T) {
	posts := []Post{
		{Title: "old", Date: day(1)},
		{Title: "new", Date: day(9)},
		{Title: "mid", Date: day(5)},
	}

	Sort(posts, config.SortNewestFirst)

	require.Equal(t, "new", posts[0].Title)
	require.Equal(t, "mid", posts[1].Title)
	require.Equal(t, "old", posts[2].Title)
	for i := 1; i < len(posts); i++ {
		require.False(t, posts[i-1].Date.Before(posts[i].Date))
	}
}

func TestSort_OldestFirst(t *testing.T) {
	posts := []Post{
		{Title: "new", Date: day(9)},
		{Title: "old", Date: day(1)},
	}

	Sort(posts, config.SortOldestFirst)

	require.Equal(t, "old", posts[0].Title)
	require.Equal(t, "new", posts[1].Title)
}

func TestSort_UnknownOrderFallsBackToNewestFirst(t *testing.T) {
	posts := []Post{
		{Title: "old", Date: day(1)},
		{Title: "new", Date: day(9)},
	}

	Sort(posts, config.SortOrder("sideways"))

	require.Equal(t, "new", posts[0].Title)
}

func TestSort_StableForEqualDates(t *testing.T) {
	posts := []Post{
		{Title: "first", Date: day(3)},
		{Title: "second", Date: day(3)},
	}

	Sort(posts, config.SortNewestFirst)

	require.Equal(t, "first", posts[0].Title)
	require.Equal(t, "second", posts[1].Title)
}
