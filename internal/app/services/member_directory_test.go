package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMembers_ShortKeywordNeverHitsUpstream(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	directory := NewMemberDirectory(newUpstreamClient(server))

	_, err := directory.SearchMembers(context.Background(), "김", 20)
	require.Error(t, err)
	assert.Equal(t, "회원 검색어는 2글자 이상 입력해주세요.", err.Error())

	_, err = directory.SearchMembers(context.Background(), "  a  ", 20)
	require.Error(t, err)

	assert.Zero(t, calls)
}

func TestSearchMembers_MergesResultsIntoCache(t *testing.T) {
	responses := []string{
		`[{"memberId":1,"memberName":"김철수"},{"memberId":2,"memberName":"김영희"}]`,
		`[{"memberId":3,"memberName":"이영수"}]`,
	}
	call := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responses[call]))
		call++
	}))
	defer server.Close()

	directory := NewMemberDirectory(newUpstreamClient(server))

	first, err := directory.SearchMembers(context.Background(), "김", 20)
	require.Error(t, err)
	assert.Nil(t, first)

	first, err = directory.SearchMembers(context.Background(), "김철", 20)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := directory.SearchMembers(context.Background(), "이영", 20)
	require.NoError(t, err)
	require.Len(t, second, 1)

	// Members from the first search stay resolvable after the second.
	member, ok := directory.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "김철수", member.MemberName)
	_, ok = directory.Lookup(3)
	assert.True(t, ok)
}

func TestToggleSelection_SymmetricDifference(t *testing.T) {
	directory := NewMemberDirectory(nil)

	directory.ToggleSelection(1)
	directory.ToggleSelection(2)
	assert.Equal(t, []int64{1, 2}, directory.SelectedIDs())

	directory.ToggleSelection(1)
	assert.Equal(t, []int64{2}, directory.SelectedIDs())

	directory.ToggleSelection(1)
	assert.Equal(t, []int64{2, 1}, directory.SelectedIDs())
}

func TestClearSelection_KeepsCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"memberId":7,"memberName":"박민수"}]`))
	}))
	defer server.Close()

	directory := NewMemberDirectory(newUpstreamClient(server))
	_, err := directory.SearchMembers(context.Background(), "박민", 20)
	require.NoError(t, err)

	directory.ToggleSelection(7)
	directory.ClearSelection()

	assert.Empty(t, directory.SelectedIDs())
	_, ok := directory.Lookup(7)
	assert.True(t, ok, "cache must survive a selection clear")
}

func TestSelectedMembers_DropsUnresolvedIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"memberId":1,"memberName":"김철수"}]`))
	}))
	defer server.Close()

	directory := NewMemberDirectory(newUpstreamClient(server))
	_, err := directory.SearchMembers(context.Background(), "김철", 20)
	require.NoError(t, err)

	directory.ToggleSelection(1)
	directory.ToggleSelection(99)

	members := directory.SelectedMembers()
	require.Len(t, members, 1)
	assert.Equal(t, int64(1), members[0].MemberID)

	assert.Equal(t, []int64{1, 99}, directory.SelectedIDs(), "unresolved ids stay selected")
}

func TestSelectedMembers_PreservesSelectionOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"memberId":1,"memberName":"가"},{"memberId":2,"memberName":"나"},{"memberId":3,"memberName":"다"}]`))
	}))
	defer server.Close()

	directory := NewMemberDirectory(newUpstreamClient(server))
	_, err := directory.SearchMembers(context.Background(), "회원", 20)
	require.NoError(t, err)

	directory.ToggleSelection(3)
	directory.ToggleSelection(1)
	directory.ToggleSelection(2)

	members := directory.SelectedMembers()
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.MemberID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestSearchMembers_LastWriteWins(t *testing.T) {
	responses := []string{
		`[{"memberId":1,"memberName":"김철수","studentId":null}]`,
		`[{"memberId":1,"memberName":"김철수","studentId":"32190001"}]`,
	}
	call := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responses[call]))
		call++
	}))
	defer server.Close()

	directory := NewMemberDirectory(newUpstreamClient(server))
	_, err := directory.SearchMembers(context.Background(), "김철", 20)
	require.NoError(t, err)
	_, err = directory.SearchMembers(context.Background(), "김철수", 20)
	require.NoError(t, err)

	member, ok := directory.Lookup(1)
	require.True(t, ok)
	require.NotNil(t, member.StudentID)
	assert.Equal(t, "32190001", *member.StudentID)
}
