package controllers

import "github.com/gofiber/fiber/v2"

// currentUserID membaca user id hasil AuthMiddleware; 0 kalau tidak ada
func currentUserID(ctx *fiber.Ctx) int {
	if v, ok := ctx.Locals("userID").(float64); ok {
		return int(v)
	}
	return 0
}

// queryBool membaca query param boolean gaya frontend ("true"/"1")
func queryBool(ctx *fiber.Ctx, key string) (bool, bool) {
	v := ctx.Query(key)
	if v == "" {
		return false, false
	}
	return v == "true" || v == "1", true
}
