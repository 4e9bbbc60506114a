// Package filterstate хранит «сырое» состояние фильтров каталога
// (текст поиска, переключённые типы комплектов и цвета, нераспарсенные
// границы цены) и выводит из него нормализованный usecase.ProductFilters.
package filterstate

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// ChangeFunc вызывается при каждом структурном изменении выведенных фильтров.
type ChangeFunc func(filters *usecase.ProductFilters)

// Controller — контроллер состояния фильтров. Мутации дешёвые и не
// валидируются на входе: мусорные значения цены просто не попадают в
// выведенные фильтры. Колбэк не вызывается на начальном состоянии и
// на мутациях, не меняющих результат Derive.
type Controller struct {
	mu sync.Mutex

	search   string
	setTypes map[domain.SetType]bool
	colors   map[string]bool
	minRaw   string
	maxRaw   string

	onChange     ChangeFunc
	lastNotified *usecase.ProductFilters
}

func NewController(onChange ChangeFunc) *Controller {
	c := &Controller{
		setTypes: make(map[domain.SetType]bool),
		colors:   make(map[string]bool),
		onChange: onChange,
	}
	// начальное состояние фиксируется без уведомления
	c.lastNotified = c.derive()
	return c
}

// SetSearch обновляет текст поиска.
func (c *Controller) SetSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = search
	c.notifyIfChanged()
}

// ToggleSetType включает или выключает фильтр по типу комплекта.
func (c *Controller) ToggleSetType(setType domain.SetType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setTypes[setType] {
		delete(c.setTypes, setType)
	} else {
		c.setTypes[setType] = true
	}
	c.notifyIfChanged()
}

// ToggleColor включает или выключает фильтр по цвету.
func (c *Controller) ToggleColor(color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.colors[color] {
		delete(c.colors, color)
	} else {
		c.colors[color] = true
	}
	c.notifyIfChanged()
}

// SetPriceRange принимает сырые строки границ цены как их ввёл пользователь.
func (c *Controller) SetPriceRange(minRaw, maxRaw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minRaw = minRaw
	c.maxRaw = maxRaw
	c.notifyIfChanged()
}

// Reset сбрасывает все фильтры в начальное состояние.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = ""
	c.setTypes = make(map[domain.SetType]bool)
	c.colors = make(map[string]bool)
	c.minRaw = ""
	c.maxRaw = ""
	c.notifyIfChanged()
}

// Derive возвращает нормализованные фильтры текущего состояния.
func (c *Controller) Derive() *usecase.ProductFilters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.derive()
}

func (c *Controller) derive() *usecase.ProductFilters {
	filters := &usecase.ProductFilters{
		Search: strings.TrimSpace(c.search),
	}

	if len(c.setTypes) > 0 {
		setTypes := make([]domain.SetType, 0, len(c.setTypes))
		for st := range c.setTypes {
			setTypes = append(setTypes, st)
		}
		sort.Slice(setTypes, func(i, j int) bool { return setTypes[i] < setTypes[j] })
		filters.SetTypes = setTypes
	}

	if len(c.colors) > 0 {
		colors := make([]string, 0, len(c.colors))
		for color := range c.colors {
			colors = append(colors, color)
		}
		sort.Strings(colors)
		filters.Colors = colors
	}

	filters.MinPrice = parsePriceBound(c.minRaw)
	filters.MaxPrice = parsePriceBound(c.maxRaw)

	return filters
}

func (c *Controller) notifyIfChanged() {
	derived := c.derive()
	if reflect.DeepEqual(derived, c.lastNotified) {
		return
	}
	c.lastNotified = derived
	if c.onChange != nil {
		c.onChange(derived)
	}
}

// parsePriceBound переводит сырую строку в границу цены.
// Пустое, нечисловое или отрицательное значение означает отсутствие границы.
func parsePriceBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return nil
	}

	return &value
}
