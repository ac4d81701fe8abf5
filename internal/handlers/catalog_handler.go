package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// CatalogHandler serves the read-mostly catalog: destinations, hotels,
// restaurants, flights, buses, private cars and travel packages. The
// create endpoints exist for seeding and administration; catalog records
// are never updated or deleted through the API.
type CatalogHandler struct {
	catalog repository.CatalogRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// parseID reads the :id path parameter; a malformed id is a 400, never
// treated as an absent record.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, map[string]string{"id": "id must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// ListDestinations handles GET /api/destinations
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	destinations, err := h.catalog.ListDestinations()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// GetDestination handles GET /api/destinations/:id
func (h *CatalogHandler) GetDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	destination, err := h.catalog.GetDestination(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, destination)
}

// CreateDestination handles POST /api/destinations
func (h *CatalogHandler) CreateDestination(c *gin.Context) {
	var req models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	destination := &models.Destination{
		ID:             uuid.New(),
		Name:           req.Name,
		Country:        req.Country,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Rating:         req.Rating,
		PricePerPerson: req.PricePerPerson,
	}
	if err := h.catalog.CreateDestination(destination); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, destination)
}

// ListHotels handles GET /api/hotels
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	hotels, err := h.catalog.ListHotels()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotel handles GET /api/hotels/:id
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	hotel, err := h.catalog.GetHotel(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// CreateHotel handles POST /api/hotels
func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	var req models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	hotel := &models.Hotel{
		ID:            uuid.New(),
		Name:          req.Name,
		Location:      req.Location,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Rating:        req.Rating,
		PricePerNight: req.PricePerNight,
		Amenities:     models.StringArray(req.Amenities),
	}
	if err := h.catalog.CreateHotel(hotel); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// ListRestaurants handles GET /api/restaurants
func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.catalog.ListRestaurants()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant handles GET /api/restaurants/:id
func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	restaurant, err := h.catalog.GetRestaurant(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// CreateRestaurant handles POST /api/restaurants
func (h *CatalogHandler) CreateRestaurant(c *gin.Context) {
	var req models.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	restaurant := &models.Restaurant{
		ID:         uuid.New(),
		Name:       req.Name,
		Location:   req.Location,
		Cuisine:    req.Cuisine,
		PriceRange: req.PriceRange,
		Rating:     req.Rating,
		ImageURL:   req.ImageURL,
	}
	if err := h.catalog.CreateRestaurant(restaurant); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// ListTripPlanners handles GET /api/trip-planners
func (h *CatalogHandler) ListTripPlanners(c *gin.Context) {
	flights, err := h.catalog.ListTripPlanners()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

// GetTripPlanner handles GET /api/trip-planners/:id
func (h *CatalogHandler) GetTripPlanner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.catalog.GetTripPlanner(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// CreateTripPlanner handles POST /api/trip-planners
func (h *CatalogHandler) CreateTripPlanner(c *gin.Context) {
	var req models.CreateTripPlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	flight := &models.TripPlanner{
		ID:            uuid.New(),
		Airline:       req.Airline,
		FromCity:      req.FromCity,
		ToCity:        req.ToCity,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
		SeatClass:     req.SeatClass,
	}
	if err := h.catalog.CreateTripPlanner(flight); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

// ListBuses handles GET /api/buses
func (h *CatalogHandler) ListBuses(c *gin.Context) {
	buses, err := h.catalog.ListBuses()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

// GetBus handles GET /api/buses/:id
func (h *CatalogHandler) GetBus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bus, err := h.catalog.GetBus(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// CreateBus handles POST /api/buses
func (h *CatalogHandler) CreateBus(c *gin.Context) {
	var req models.CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	bus := &models.Bus{
		ID:            uuid.New(),
		OperatorName:  req.OperatorName,
		FromCity:      req.FromCity,
		ToCity:        req.ToCity,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
		TotalSeats:    req.TotalSeats,
		SeatLayout:    req.SeatLayout,
	}
	if err := h.catalog.CreateBus(bus); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bus)
}

// ListPrivateCars handles GET /api/private-cars
func (h *CatalogHandler) ListPrivateCars(c *gin.Context) {
	cars, err := h.catalog.ListPrivateCars()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// GetPrivateCar handles GET /api/private-cars/:id
func (h *CatalogHandler) GetPrivateCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	car, err := h.catalog.GetPrivateCar(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// CreatePrivateCar handles POST /api/private-cars
func (h *CatalogHandler) CreatePrivateCar(c *gin.Context) {
	var req models.CreatePrivateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	car := &models.PrivateCar{
		ID:             uuid.New(),
		Model:          req.Model,
		CarType:        req.CarType,
		PricePerDay:    req.PricePerDay,
		Capacity:       req.Capacity,
		DriverIncluded: req.DriverIncluded,
	}
	if err := h.catalog.CreatePrivateCar(car); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

// ListTravelPackages handles GET /api/travel-packages
func (h *CatalogHandler) ListTravelPackages(c *gin.Context) {
	packages, err := h.catalog.ListTravelPackages()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GetTravelPackage handles GET /api/travel-packages/:id
func (h *CatalogHandler) GetTravelPackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pkg, err := h.catalog.GetTravelPackage(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// CreateTravelPackage handles POST /api/travel-packages
func (h *CatalogHandler) CreateTravelPackage(c *gin.Context) {
	var req models.CreateTravelPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	pkg := &models.TravelPackage{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Destinations: models.StringArray(req.Destinations),
		DurationDays: req.DurationDays,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
	}
	if err := h.catalog.CreateTravelPackage(pkg); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}
