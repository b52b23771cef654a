package usecase

import (
	"context"

	"curtaincall/internal/domain/member"
	"curtaincall/internal/infra"
)

type MemberUseCase interface {
	Get(ctx context.Context, id string) (*member.Member, error)
}

type memberUseCaseImpl struct {
	memberRepo MemberRepository
}

func NewMemberUseCase(memberRepo MemberRepository) MemberUseCase {
	return &memberUseCaseImpl{memberRepo: memberRepo}
}

func (m *memberUseCaseImpl) Get(ctx context.Context, id string) (*member.Member, error) {
	found, err := m.memberRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return found, nil
}
