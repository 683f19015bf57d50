package repository

import (
	blockRepo "slotify/database/repository/block"
	bookingRepo "slotify/database/repository/booking"
	businessRepo "slotify/database/repository/business"
	serviceRepo "slotify/database/repository/service"
)

// Re-export the BusinessRepository interface and constructor.
type BusinessRepository = businessRepo.BusinessRepository

var NewMongoBusinessRepo = businessRepo.NewMongoBusinessRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the ServiceRepository interface and constructor.
type ServiceRepository = serviceRepo.ServiceRepository

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

// Re-export the BlockRepository interface and constructor.
type BlockRepository = blockRepo.BlockRepository

var NewMongoBlockRepo = blockRepo.NewMongoBlockRepo
