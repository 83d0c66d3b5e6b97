package controllers

import (
	"errors"
	"strconv"

	"backend-master/models"
	"backend-master/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var terminalKategori = map[string]bool{
	"Depo":          true,
	"Dispenser":     true,
	"Truck Gantung": true,
}

type TerminalController struct {
	DB *gorm.DB
}

func NewTerminalController(DB *gorm.DB) *TerminalController {
	return &TerminalController{DB: DB}
}

func (c *TerminalController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Terminal{}).Preload("Cabang").Preload("Area")

	if s := ctx.Query("search"); s != "" {
		like := "%" + s + "%"
		q = q.Where("nama_terminal LIKE ? OR inisial_terminal LIKE ? OR lokasi_terminal LIKE ?", like, like, like)
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}
	if k := ctx.Query("kategori_terminal"); k != "" {
		q = q.Where("kategori_terminal = ?", k)
	}
	if id := ctx.QueryInt("id_cabang", 0); id > 0 {
		q = q.Where("id_cabang = ?", id)
	}
	if id := ctx.QueryInt("id_area", 0); id > 0 {
		q = q.Where("id_area = ?", id)
	}

	var rows []models.Terminal
	result, err := utils.Paginate(q.Order("nama_terminal ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

// fillFromForm membaca field multipart ke row. Error validasi dikembalikan
// sebagai pesan siap kirim.
func (c *TerminalController) fillFromForm(ctx *fiber.Ctx, row *models.Terminal) string {
	nama := ctx.FormValue("nama_terminal")
	if nama == "" {
		return "nama_terminal is required"
	}
	kategori := ctx.FormValue("kategori_terminal")
	if !terminalKategori[kategori] {
		return "kategori_terminal must be one of Depo, Dispenser, Truck Gantung"
	}

	row.NamaTerminal = nama
	row.KategoriTerminal = kategori
	row.InisialTerminal = ctx.FormValue("inisial_terminal")
	row.TankiTerminal = ctx.FormValue("tanki_terminal")
	row.LokasiTerminal = ctx.FormValue("lokasi_terminal")
	row.AlamatTerminal = ctx.FormValue("alamat_terminal")
	row.TelpTerminal = ctx.FormValue("telp_terminal")
	row.FaxTerminal = ctx.FormValue("fax_terminal")
	row.CcTerminal = ctx.FormValue("cc_terminal")
	row.CatatanTerminal = ctx.FormValue("catatan_terminal")
	row.IsActive = formBool(ctx, "is_active", row.IsActive)

	if v, msg := formFloat(ctx, "batas_atas"); msg != "" {
		return msg
	} else if v != nil {
		row.BatasAtas = v
	}
	if v, msg := formFloat(ctx, "batas_bawah"); msg != "" {
		return msg
	} else if v != nil {
		row.BatasBawah = v
	}
	if v, msg := formFloat(ctx, "latitude"); msg != "" {
		return msg
	} else if v != nil {
		row.Latitude = v
	}
	if v, msg := formFloat(ctx, "longitude"); msg != "" {
		return msg
	} else if v != nil {
		row.Longitude = v
	}

	if v := ctx.FormValue("id_cabang"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return "id_cabang must be numeric"
		}
		var cabang models.Cabang
		if err := c.DB.First(&cabang, id).Error; err != nil {
			return "Cabang not found"
		}
		u := uint(id)
		row.IDCabang = &u
	}
	if v := ctx.FormValue("id_area"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return "id_area must be numeric"
		}
		var area models.Area
		if err := c.DB.First(&area, id).Error; err != nil {
			return "Area not found"
		}
		u := uint(id)
		row.IDArea = &u
	}
	return ""
}

func formFloat(ctx *fiber.Ctx, key string) (*float64, string) {
	v := ctx.FormValue(key)
	if v == "" {
		return nil, ""
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, key + " must be numeric"
	}
	return &f, ""
}

func (c *TerminalController) Store(ctx *fiber.Ctx) error {
	row := models.Terminal{IsActive: true}
	if msg := c.fillFromForm(ctx, &row); msg != "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg})
	}

	path, err := utils.SaveUpload(ctx, "att_terminal", "terminal")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save attachment"})
	}
	row.AttTerminal = path
	row.StampCreated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Preload("Cabang").Preload("Area").First(&row, row.ID)
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *TerminalController) Show(ctx *fiber.Ctx) error {
	var row models.Terminal
	if err := c.DB.Preload("Cabang").Preload("Area").First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Terminal not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *TerminalController) Update(ctx *fiber.Ctx) error {
	var row models.Terminal
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Terminal not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if msg := c.fillFromForm(ctx, &row); msg != "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg})
	}

	// remove_att=1 menghapus attachment lama tanpa upload baru
	if ctx.FormValue("remove_att") == "1" && row.AttTerminal != "" {
		utils.RemoveUpload(row.AttTerminal)
		row.AttTerminal = ""
	}
	path, err := utils.SaveUpload(ctx, "att_terminal", "terminal")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save attachment"})
	}
	if path != "" {
		if row.AttTerminal != "" {
			utils.RemoveUpload(row.AttTerminal)
		}
		row.AttTerminal = path
	}
	row.StampUpdated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Preload("Cabang").Preload("Area").First(&row, row.ID)
	return ctx.JSON(row)
}

func (c *TerminalController) Destroy(ctx *fiber.Ctx) error {
	var row models.Terminal
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Terminal not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if row.AttTerminal != "" {
		utils.RemoveUpload(row.AttTerminal)
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
