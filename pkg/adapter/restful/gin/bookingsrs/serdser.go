package bookingsrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/bookinguc"
)

type rawLocation struct {
	Lat     float64 `json:"lat" binding:"omitempty,latitude"`
	Lng     float64 `json:"lng" binding:"omitempty,longitude"`
	Address string  `json:"address"`
}

func (rl rawLocation) ToModel() model.Location {
	return model.Location{Lat: rl.Lat, Lng: rl.Lng, Address: rl.Address}
}

type rawCreateReq struct {
	CustomerID    string      `json:"customerId"`
	CustomerName  string      `json:"customerName"`
	Pickup        rawLocation `json:"pickup"`
	Destination   rawLocation `json:"destination"`
	ScheduledTime time.Time   `json:"scheduledTime"`
}

// DserCreateReq binds a booking creation request body. Requirement
// checks for the customer and coordinates are left to the use case,
// so API callers observe uniform error payloads whether they omit a
// field or send an unusable value.
func (rs *resource) DserCreateReq(c *gin.Context) *bookinguc.CreateInput {
	req := &rawCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &bookinguc.CreateInput{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Pickup:        req.Pickup.ToModel(),
		Destination:   req.Destination.ToModel(),
		ScheduledTime: req.ScheduledTime,
	}
}

type rawAssignReq struct {
	VehicleID string `json:"vehicleId" binding:"required"`
	DriverID  string `json:"driverId" binding:"required"`
}

func (rs *resource) DserAssignReq(c *gin.Context) *rawAssignReq {
	req := &rawAssignReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

type rawStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (rs *resource) DserStatusReq(c *gin.Context) *model.BookingStatus {
	req := &rawStatusReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	status, err := model.ParseBookingStatus(req.Status)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "status", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &status
}
