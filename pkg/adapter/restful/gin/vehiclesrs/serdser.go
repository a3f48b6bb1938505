package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/fleetuc"
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
	Model        string       `json:"model" binding:"required"`
	Type         string       `json:"type" binding:"required"`
	LicensePlate string       `json:"licensePlate" binding:"required"`
	Status       *string      `json:"status"`
	Location     *rawLocation `json:"location"`
	Fuel         *int         `json:"fuel" binding:"omitempty,min=0,max=100"`
	Health       *int         `json:"health" binding:"omitempty,min=0,max=100"`
	Mileage      *int         `json:"mileage" binding:"omitempty,min=0"`
	DriverID     *string      `json:"driverId"`
}

func (rs *resource) DserCreateReq(c *gin.Context) *fleetuc.CreateInput {
	req := &rawCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	vt, err := model.ParseVehicleType(req.Type)
	if !serdser.Assert(&errs, err == nil, "type", errMsg(err)) {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	in := &fleetuc.CreateInput{
		Model:        req.Model,
		Type:         vt,
		LicensePlate: req.LicensePlate,
		Fuel:         req.Fuel,
		Health:       req.Health,
		Mileage:      req.Mileage,
		DriverID:     req.DriverID,
	}
	if req.Status != nil {
		vs, err := model.ParseVehicleStatus(*req.Status)
		if !serdser.Assert(&errs, err == nil, "status", errMsg(err)) {
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		in.Status = &vs
	}
	if req.Location != nil {
		l := req.Location.ToModel()
		in.Location = &l
	}
	return in
}

type rawUpdateReq struct {
	Status   *string      `json:"status"`
	Fuel     *int         `json:"fuel" binding:"omitempty,min=0,max=100"`
	Health   *int         `json:"health" binding:"omitempty,min=0,max=100"`
	DriverID *string      `json:"driverId"`
	Location *rawLocation `json:"location"`
}

func (rs *resource) DserUpdateReq(c *gin.Context) *fleetuc.UpdateInput {
	req := &rawUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	in := &fleetuc.UpdateInput{
		Fuel:     req.Fuel,
		Health:   req.Health,
		DriverID: req.DriverID,
	}
	if req.Status != nil {
		vs, err := model.ParseVehicleStatus(*req.Status)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "status", err.Error())
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		in.Status = &vs
	}
	if req.Location != nil {
		l := req.Location.ToModel()
		in.Location = &l
	}
	return in
}

func errMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
