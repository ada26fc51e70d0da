// Пакет service реализует жизненный цикл заказа: размещение, редактирование,
// оценку, действия администратора и выборки. Identity передаётся явным
// аргументом в каждую операцию — роль разрешается один раз на запрос.
package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"commissions/internal/app/authz"
	"commissions/internal/app/ds"
	"commissions/internal/app/intake"
	"commissions/internal/app/repository"
	"commissions/internal/app/role"
	"commissions/internal/app/storage"
	"commissions/internal/app/validation"

	"github.com/sirupsen/logrus"
)

// ErrUnauthorized — единый ответ и на запрет, и на несуществующий заказ:
// снаружи чужой заказ неотличим от отсутствующего
var ErrUnauthorized = errors.New("unauthorized action")

// Папки референсов внутри хранилища
const (
	characterUploadsDir  = "character_references"
	backgroundUploadsDir = "background_references"
)

// Действия над заказом
const (
	ActionAccept   = "accept"
	ActionComplete = "complete"
	ActionRemove   = "remove"
	ActionReject   = "reject"
)

// Identity — аутентифицированный пользователь с уже разрешённой ролью
type Identity struct {
	UserID uint
	Role   role.Role
}

type OrderService struct {
	repo  *repository.Repository
	store storage.FileStore
	now   func() time.Time
}

func NewOrderService(repo *repository.Repository, store storage.FileStore) *OrderService {
	return &OrderService{
		repo:  repo,
		store: store,
		now:   time.Now,
	}
}

// Place размещает новый заказ. Администраторы заказы не размещают.
// Заказ, палитра и референсы записываются одной транзакцией.
func (s *OrderService) Place(ctx context.Context, identity Identity, form validation.OrderForm, characterFiles, backgroundFiles []intake.File) (uint, error) {
	if identity.Role == role.Admin {
		return 0, ErrUnauthorized
	}

	payload, err := validation.ValidateOrderForm(form, s.now())
	if err != nil {
		return 0, err
	}

	characterPaths := intake.Process(ctx, s.store, characterUploadsDir, characterFiles)
	backgroundPaths := []string{}
	if payload.HasBackground {
		backgroundPaths = intake.Process(ctx, s.store, backgroundUploadsDir, backgroundFiles)
	}

	order := &ds.Order{
		UserID:                       identity.UserID,
		OrderName:                    payload.OrderName,
		CharacterPart:                payload.CharacterPart,
		PreferredStyle:               payload.PreferredStyle,
		PoseView:                     payload.PoseView,
		PoseDescription:              payload.PoseDescription,
		CharacterFeaturesDescription: payload.CharacterFeaturesDescription,
		OutfitDescription:            payload.OutfitDescription,
		HasBackground:                payload.HasBackground,
		BackgroundDescription:        payload.BackgroundDescription,
		DueDate:                      payload.DueDate,
		Status:                       ds.StatusPending,
		CreatedAt:                    s.now(),
	}

	if err := s.repo.CreateOrder(order, payload.Colors, characterPaths, backgroundPaths); err != nil {
		return 0, err
	}

	return order.ID, nil
}

// Edit редактирует заказ владельца. Разрешено только пока заказ в статусе
// pending: после решения администратора содержимое заморожено.
func (s *OrderService) Edit(ctx context.Context, identity Identity, orderID uint, form validation.OrderForm, characterFiles, backgroundFiles []intake.File) error {
	order, err := s.repo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if !authz.CanEdit(identity.Role, order, identity.UserID) {
		return ErrUnauthorized
	}

	payload, err := validation.ValidateOrderForm(form, s.now())
	if err != nil {
		return err
	}

	characterPaths := intake.Process(ctx, s.store, characterUploadsDir, characterFiles)
	backgroundPaths := []string{}
	if payload.HasBackground {
		backgroundPaths = intake.Process(ctx, s.store, backgroundUploadsDir, backgroundFiles)
	}

	updated := &ds.Order{
		ID:                           order.ID,
		OrderName:                    payload.OrderName,
		CharacterPart:                payload.CharacterPart,
		PreferredStyle:               payload.PreferredStyle,
		PoseView:                     payload.PoseView,
		PoseDescription:              payload.PoseDescription,
		CharacterFeaturesDescription: payload.CharacterFeaturesDescription,
		OutfitDescription:            payload.OutfitDescription,
		HasBackground:                payload.HasBackground,
		BackgroundDescription:        payload.BackgroundDescription,
		DueDate:                      payload.DueDate,
	}

	return s.repo.UpdateOrder(updated, payload.Colors, characterPaths, backgroundPaths)
}

// SetPriceAndReview назначает цену и переводит заказ в reviewed.
// Пустая цена — тихий no-op (администратор просто закрыл форму).
func (s *OrderService) SetPriceAndReview(_ context.Context, identity Identity, orderID uint, rawPrice string) error {
	if identity.Role != role.Admin {
		return ErrUnauthorized
	}

	if rawPrice == "" {
		return nil
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return &validation.Error{Message: "invalid price"}
	}
	if price < 0 {
		return &validation.Error{Message: "price must be positive"}
	}

	order, err := s.repo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if !authz.CanSetPrice(identity.Role, order) {
		return ErrUnauthorized
	}

	return s.repo.SetPriceAndReview(orderID, price)
}

// ApplyAction выполняет действие над заказом: accept и complete доступны
// только администратору, remove и reject — администратору или владельцу.
func (s *OrderService) ApplyAction(ctx context.Context, identity Identity, orderID uint, action string) error {
	order, err := s.repo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	switch action {
	case ActionAccept:
		if !authz.CanAccept(identity.Role, order) {
			return ErrUnauthorized
		}
		return s.repo.UpdateStatus(orderID, ds.StatusAccepted)

	case ActionComplete:
		if !authz.CanComplete(identity.Role, order) {
			return ErrUnauthorized
		}
		return s.repo.UpdateStatus(orderID, ds.StatusCompleted)

	case ActionRemove, ActionReject:
		if !authz.CanRemove(identity.Role, order, identity.UserID) {
			return ErrUnauthorized
		}
		return s.deleteOrder(ctx, orderID)

	default:
		return ErrUnauthorized
	}
}

// deleteOrder удаляет файлы референсов (отсутствующие игнорируются), затем
// строки заказа. Файлы удаляются первыми: после сбоя между шагами останется
// строка с мёртвым путём, но не файл-сирота без записи.
func (s *OrderService) deleteOrder(ctx context.Context, orderID uint) error {
	character, background, err := s.repo.ReferencePaths(orderID)
	if err != nil {
		return err
	}

	for _, path := range append(character, background...) {
		if err := s.store.Remove(ctx, path); err != nil {
			logrus.Warnf("failed to delete reference file %s: %v", path, err)
		}
	}

	return s.repo.DeleteOrder(orderID)
}

// List возвращает заказы по возрастанию срока: администратору — все,
// заказчику — только собственные
func (s *OrderService) List(_ context.Context, identity Identity) ([]ds.Order, error) {
	if identity.Role == role.Admin {
		return s.repo.GetOrders(nil)
	}
	return s.repo.GetOrders(&identity.UserID)
}

// ListAccepted возвращает принятые в работу заказы (только администратору)
func (s *OrderService) ListAccepted(_ context.Context, identity Identity) ([]ds.Order, error) {
	if identity.Role != role.Admin {
		return nil, ErrUnauthorized
	}
	return s.repo.GetOrdersByStatus(ds.StatusAccepted)
}

// GetDetail возвращает полную карточку заказа после проверки доступа.
// Карточка читается одним запросом: отдельной загрузки заказа нет, и заказ,
// исчезнувший к моменту чтения, отдаётся как обычный запрет.
func (s *OrderService) GetDetail(ctx context.Context, identity Identity, orderID uint) (*repository.OrderDetail, error) {
	detail, err := s.repo.GetOrderDetail(orderID)
	if err != nil {
		return nil, err
	}
	if detail == nil || !authz.CanView(identity.Role, &detail.Order, identity.UserID) {
		return nil, ErrUnauthorized
	}

	// Пути референсов превращаются в ссылки для клиента: со статики при
	// дисковом хранилище, presigned URL при MinIO
	detail.CharacterReferences = s.referenceURLs(ctx, detail.CharacterReferences)
	detail.BackgroundReferences = s.referenceURLs(ctx, detail.BackgroundReferences)

	return detail, nil
}

func (s *OrderService) referenceURLs(ctx context.Context, paths []string) []string {
	urls := make([]string, len(paths))
	for i, path := range paths {
		url, err := s.store.FileURL(ctx, path)
		if err != nil {
			logrus.Warnf("failed to build URL for reference %s: %v", path, err)
			urls[i] = path
			continue
		}
		urls[i] = url
	}
	return urls
}
