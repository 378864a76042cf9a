package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMarkerExists     = errors.New("Действие выполнено ранее.")
	ErrMarkerNotFound   = errors.New("Связь не существует.")
	ErrUnknownRelation  = errors.New("unknown relation kind")
	ErrSelfSubscription = errors.New("Вы не можете подписаться на себя!")

	ErrAlreadyInFavorites    = fmt.Errorf("Рецепт уже в избранном! %w", ErrMarkerExists)
	ErrAlreadyInShoppingCart = fmt.Errorf("Рецепт уже в списке покупок! %w", ErrMarkerExists)
	ErrAlreadySubscribed     = fmt.Errorf("Вы уже подписаны на этого автора. %w", ErrMarkerExists)

	ErrNotInFavorites    = fmt.Errorf("Рецепта нет в избранном. %w", ErrMarkerNotFound)
	ErrNotInShoppingCart = fmt.Errorf("Рецепта нет в списке покупок. %w", ErrMarkerNotFound)
	ErrNotSubscribed     = fmt.Errorf("Вы не подписаны на этого автора. %w", ErrMarkerNotFound)
)
