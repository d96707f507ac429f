// Package mapper переводит сущности клиента в строки удалённого API и обратно.
// Это единственное место, где сопоставляются имена полей.
package mapper

import "FishLog/internal/cli/model"

// CatchToRow переводит улов в строку catches.
func CatchToRow(c model.Catch) model.CatchRow {
	return model.CatchRow{
		ID:                c.ID,
		UserID:            c.OwnerID,
		Species:           c.Species,
		LengthCm:          c.LengthCm,
		WeightGrams:       c.WeightGrams,
		CaughtAt:          c.CaughtAt,
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		PhotoURL:          c.PhotoURL,
		WeatherTemp:       c.WeatherTemp,
		WeatherWind:       c.WeatherWind,
		WeatherConditions: c.WeatherConditions,
		WeatherPressure:   c.WeatherPressure,
		WaterName:         c.WaterName,
		Notes:             c.Notes,
		IsPublic:          c.IsPublic,
		CreatedAt:         c.CreatedAt,
	}
}

// CatchFromRow переводит строку catches в улов.
func CatchFromRow(r model.CatchRow) model.Catch {
	return model.Catch{
		ID:                r.ID,
		OwnerID:           r.UserID,
		Species:           r.Species,
		LengthCm:          r.LengthCm,
		WeightGrams:       r.WeightGrams,
		CaughtAt:          r.CaughtAt,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		PhotoURL:          r.PhotoURL,
		WeatherTemp:       r.WeatherTemp,
		WeatherWind:       r.WeatherWind,
		WeatherConditions: r.WeatherConditions,
		WeatherPressure:   r.WeatherPressure,
		WaterName:         r.WaterName,
		Notes:             r.Notes,
		IsPublic:          r.IsPublic,
		CreatedAt:         r.CreatedAt,
	}
}

// CatchPatch строит частичную строку для обновления: все изменяемые столбцы,
// без id, user_id и created_at.
func CatchPatch(c model.Catch) model.CatchPatchRow {
	return model.CatchPatchRow{
		Species:           c.Species,
		LengthCm:          c.LengthCm,
		WeightGrams:       c.WeightGrams,
		CaughtAt:          c.CaughtAt,
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		PhotoURL:          c.PhotoURL,
		WeatherTemp:       c.WeatherTemp,
		WeatherWind:       c.WeatherWind,
		WeatherConditions: c.WeatherConditions,
		WeatherPressure:   c.WeatherPressure,
		WaterName:         c.WaterName,
		Notes:             c.Notes,
		IsPublic:          c.IsPublic,
	}
}

// BoatRampToRow переводит спуск в строку boat_ramps.
func BoatRampToRow(b model.BoatRamp) model.BoatRampRow {
	return model.BoatRampRow{
		ID:            b.ID,
		Name:          b.Name,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		WaterName:     b.WaterName,
		Description:   b.Description,
		Parking:       b.Parking,
		Fee:           b.Fee,
		AddedByUserID: b.AddedByUserID,
		Verified:      b.Verified,
		CreatedAt:     b.CreatedAt,
	}
}

// BoatRampFromRow переводит строку boat_ramps в спуск.
func BoatRampFromRow(r model.BoatRampRow) model.BoatRamp {
	return model.BoatRamp{
		ID:            r.ID,
		Name:          r.Name,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		WaterName:     r.WaterName,
		Description:   r.Description,
		Parking:       r.Parking,
		Fee:           r.Fee,
		AddedByUserID: r.AddedByUserID,
		Verified:      r.Verified,
		CreatedAt:     r.CreatedAt,
	}
}
