package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

const defaultSearchLimit = 20

// MemberDirectory resolves grant targets. Every search result is merged into
// a session-scoped cache keyed by member id, so previously selected members
// stay displayable even after later searches no longer return them. The cache
// is never pruned within a session.
type MemberDirectory struct {
	client *infrastructures.AegisClient

	mu       sync.Mutex
	cache    map[int64]models.MemberSearchItem
	selected map[int64]struct{}
	order    []int64
}

func NewMemberDirectory(client *infrastructures.AegisClient) *MemberDirectory {
	return &MemberDirectory{
		client:   client,
		cache:    make(map[int64]models.MemberSearchItem),
		selected: make(map[int64]struct{}),
	}
}

// SearchMembers queries the upstream member search and merges every hit into
// the cache, last write wins. Keywords shorter than two characters after
// trimming are rejected without a network call.
func (d *MemberDirectory) SearchMembers(ctx context.Context, keyword string, limit int) ([]models.MemberSearchItem, error) {
	trimmed := strings.TrimSpace(keyword)
	if len([]rune(trimmed)) < 2 {
		return nil, errors.NewBadRequestError("회원 검색어는 2글자 이상 입력해주세요.")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := url.Values{}
	params.Set("keyword", trimmed)
	params.Set("limit", strconv.Itoa(limit))

	results, err := pkg.Fetch[[]models.MemberSearchItem](ctx, d.client, http.MethodGet, "/admin/points/members/search", params, nil)
	if err != nil {
		return nil, err
	}
	if results == nil {
		return nil, nil
	}

	d.mu.Lock()
	for _, member := range *results {
		d.cache[member.MemberID] = member
	}
	d.mu.Unlock()

	return *results, nil
}

// ToggleSelection adds the member id to the selection set if absent and
// removes it if present, regardless of any checkbox state the caller tracks.
func (d *MemberDirectory) ToggleSelection(memberID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.selected[memberID]; ok {
		delete(d.selected, memberID)
		for i, id := range d.order {
			if id == memberID {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
		return
	}
	d.selected[memberID] = struct{}{}
	d.order = append(d.order, memberID)
}

// ClearSelection empties the selection set. The identity cache is kept.
func (d *MemberDirectory) ClearSelection() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = make(map[int64]struct{})
	d.order = nil
}

// SelectedIDs returns the selected member ids in selection order.
func (d *MemberDirectory) SelectedIDs() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]int64, len(d.order))
	copy(ids, d.order)
	return ids
}

// SelectedMembers maps the selection set through the cache. Ids whose
// identity has not been resolved yet are dropped rather than displayed bare.
func (d *MemberDirectory) SelectedMembers() []models.MemberSearchItem {
	d.mu.Lock()
	defer d.mu.Unlock()

	members := make([]models.MemberSearchItem, 0, len(d.order))
	for _, id := range d.order {
		if member, ok := d.cache[id]; ok {
			members = append(members, member)
		}
	}
	return members
}

// Lookup returns the cached identity for a member id, if any.
func (d *MemberDirectory) Lookup(memberID int64) (models.MemberSearchItem, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	member, ok := d.cache[memberID]
	return member, ok
}
