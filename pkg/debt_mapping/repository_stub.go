package debt_mapping

import (
	"context"
)

type StubRepository struct {
	data map[string]DebtMapItem
	// order preserves insertion order so GetAll behaves like the DB query.
	order []string
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]DebtMapItem{}}
}

func (s *StubRepository) Store(ctx context.Context, userId int, item DebtMapItem) (DebtMapItem, error) {
	s.data[item.Id] = item
	s.order = append(s.order, item.Id)
	return item, nil
}

func (s *StubRepository) GetAll(ctx context.Context, userId int) ([]DebtMapItem, error) {
	items := make([]DebtMapItem, 0, len(s.data))
	for _, id := range s.order {
		if item, ok := s.data[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *StubRepository) Update(ctx context.Context, userId int, item DebtMapItem) (bool, error) {
	if _, ok := s.data[item.Id]; !ok {
		return false, nil
	}
	s.data[item.Id] = item
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, userId int, itemId string) (bool, error) {
	if _, ok := s.data[itemId]; !ok {
		return false, nil
	}
	delete(s.data, itemId)
	return true, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[string]DebtMapItem{}
	s.order = nil
}
