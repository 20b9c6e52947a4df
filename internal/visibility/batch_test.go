package visibility_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postgate/internal/visibility"
	"postgate/internal/visibility/mocks"
)

func ids(posts []visibility.Post) []uint64 {
	out := make([]uint64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func mixedFeed() []visibility.Post {
	return []visibility.Post{
		{ID: 1, OwnerID: 10, Visibility: visibility.Public},
		{ID: 2, OwnerID: 10, Visibility: visibility.Private},
		{ID: 3, OwnerID: 20, Visibility: visibility.MutualFriends},
		{ID: 4, OwnerID: 5, Visibility: visibility.Private},
		{ID: 5, OwnerID: 30, Visibility: visibility.MutualFriends},
		{ID: 6, OwnerID: 20, Visibility: visibility.MutualFriends},
		{ID: 7, OwnerID: 40, Visibility: visibility.Tier(9)},
		{ID: 8, OwnerID: 5, Visibility: visibility.MutualFriends},
	}
}

func TestBatchFilter_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := visibility.NewBatchFilter(nil, mocks.NewMockRelationshipOracle(ctrl))
	got, err := f.Filter(context.Background(), mixedFeed(), 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids(got))
}

func TestBatchFilter_Empty(t *testing.T) {
	f := visibility.NewBatchFilter(nil, nil)
	got, err := f.Filter(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBatchFilter_NoChecksNeeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	posts := []visibility.Post{
		{ID: 1, OwnerID: 10, Visibility: visibility.Public},
		{ID: 2, OwnerID: 10, Visibility: visibility.Private},
		{ID: 3, OwnerID: 5, Visibility: visibility.Private},
		{ID: 4, OwnerID: 5, Visibility: visibility.MutualFriends},
		{ID: 5, OwnerID: 11, Visibility: visibility.Tier(7)},
	}

	f := visibility.NewBatchFilter(nil, mocks.NewMockRelationshipOracle(ctrl))
	got, err := f.Filter(context.Background(), posts, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 4}, ids(got))
}

func TestBatchFilter_DistinctOwnerLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRelationshipOracle(ctrl)
	oracle.EXPECT().AreMutualFriends(gomock.Any(), uint64(5), uint64(20)).Return(true, nil).Times(1)
	oracle.EXPECT().AreMutualFriends(gomock.Any(), uint64(5), uint64(30)).Return(false, nil).Times(1)

	f := visibility.NewBatchFilter(nil, oracle)
	got, err := f.Filter(context.Background(), mixedFeed(), 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 4, 6, 8}, ids(got))
}

func TestBatchFilter_SameAuthorSingleLookup(t *testing.T) {
	posts := make([]visibility.Post, 0, 25)
	for i := uint64(1); i <= 25; i++ {
		posts = append(posts, visibility.Post{ID: i, OwnerID: 77, Visibility: visibility.MutualFriends})
	}

	for _, mutual := range []bool{true, false} {
		ctrl := gomock.NewController(t)
		oracle := mocks.NewMockRelationshipOracle(ctrl)
		oracle.EXPECT().AreMutualFriends(gomock.Any(), uint64(3), uint64(77)).Return(mutual, nil).Times(1)

		got, err := visibility.NewBatchFilter(nil, oracle).Filter(context.Background(), posts, 3)
		require.NoError(t, err)
		if mutual {
			assert.Len(t, got, 25)
		} else {
			assert.Empty(t, got)
		}
		ctrl.Finish()
	}
}

func TestBatchFilter_OracleFailureDropsOnlyThatAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRelationshipOracle(ctrl)
	oracle.EXPECT().AreMutualFriends(gomock.Any(), uint64(5), uint64(20)).Return(false, errors.New("timeout"))
	oracle.EXPECT().AreMutualFriends(gomock.Any(), uint64(5), uint64(30)).Return(true, nil)

	got, err := visibility.NewBatchFilter(nil, oracle).Filter(context.Background(), mixedFeed(), 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 4, 5, 8}, ids(got))
}

func TestBatchFilter_CancelledMidBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	oracle := mocks.NewMockRelationshipOracle(ctrl)
	oracle.EXPECT().AreMutualFriends(gomock.Any(), uint64(5), uint64(20)).
		DoAndReturn(func(context.Context, uint64, uint64) (bool, error) {
			cancel()
			return true, nil
		})

	got, err := visibility.NewBatchFilter(nil, oracle).Filter(ctx, mixedFeed(), 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestBatchFilter_DoesNotMutateInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRelationshipOracle(ctrl)
	oracle.EXPECT().AreMutualFriends(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	in := mixedFeed()
	before := append([]visibility.Post(nil), in...)
	_, err := visibility.NewBatchFilter(nil, oracle).Filter(context.Background(), in, 5)
	require.NoError(t, err)
	assert.Equal(t, before, in)
}

type feedRow struct {
	PostID uint64
	Author uint64
	Tier   visibility.Tier
}

func TestFilterSlice_CustomRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRelationshipOracle(ctrl)
	oracle.EXPECT().AreMutualFriends(gomock.Any(), uint64(1), uint64(2)).Return(true, nil)

	rows := []feedRow{
		{PostID: 100, Author: 2, Tier: visibility.MutualFriends},
		{PostID: 101, Author: 3, Tier: visibility.Private},
		{PostID: 102, Author: 2, Tier: visibility.Public},
	}
	got, err := visibility.FilterSlice(context.Background(), visibility.NewBatchFilter(nil, oracle), rows, 1,
		func(r feedRow) visibility.Post {
			return visibility.Post{ID: r.PostID, OwnerID: r.Author, Visibility: r.Tier}
		})
	require.NoError(t, err)
	assert.Equal(t, []feedRow{rows[0], rows[2]}, got)
}
