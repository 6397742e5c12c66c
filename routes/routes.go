package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"go-soilspec/controllers"
	"go-soilspec/middleware"
)

// SetupRouter 配置所有路由
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	// 创建控制器实例
	authController := controllers.NewAuthController(db)
	profileController := controllers.NewProfileController(db)
	sampleController := controllers.NewSampleController(db)
	lookupController := controllers.NewLookupController(db)
	climateController := controllers.NewClimateController(db)
	spectraController := controllers.NewSpectraController(db)
	sensorController := controllers.NewSensorController(db)

	// 公共路由
	public := r.Group("/")
	{
		// 用户认证相关路由
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
	}

	// 需要认证的路由
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		// 剖面相关路由
		protected.POST("/profile/save", profileController.SaveProfile)
		protected.GET("/profile/records", profileController.GetProfiles)
		protected.GET("/profile/record", profileController.GetProfile)

		// 层位化验记录相关路由
		protected.POST("/chemical/save", sampleController.SaveChemicalRecord)
		protected.GET("/chemical/records", sampleController.GetChemicalRecords)
		protected.GET("/chemical/record", sampleController.GetChemicalRecord)
		protected.POST("/physical/save", sampleController.SavePhysicalRecord)
		protected.GET("/physical/records", sampleController.GetPhysicalRecords)
		protected.GET("/physical/record", sampleController.GetPhysicalRecord)

		// 编码字典相关路由
		protected.POST("/keys/save", lookupController.SaveAttributeKey)
		protected.GET("/keys", lookupController.GetAttributeKeys)

		// 气候数据相关路由
		protected.POST("/climate/station/save", climateController.SaveStation)
		protected.GET("/climate/stations", climateController.GetStations)
		protected.POST("/climate/data/save", climateController.SaveClimateData)
		protected.GET("/climate/data", climateController.GetClimateData)

		// 传感器参数相关路由
		protected.GET("/sensors", sensorController.GetSensors)
		protected.GET("/sensors/collection", sensorController.GetSensorCollection)
		protected.GET("/sensors/bands", sensorController.GetSensorBands)

		// 光谱库相关路由
		protected.POST("/spectra/upload", spectraController.UploadSpectra)
		protected.GET("/spectra/records", spectraController.GetSpectraRecords)
		protected.GET("/spectra/record", spectraController.GetSpectrum)
		protected.POST("/spectra/resample", sensorController.ResampleSpectra)
		protected.GET("/endmembers", sensorController.GetEndmembers)
		protected.POST("/unmix/prepare", sensorController.PrepareUnmix)

		// 批次编码相关路由
		protected.POST("/samplecode/create", spectraController.CreateSampleCode)
		protected.GET("/samplecode/records", spectraController.GetSampleCodes)
	}

	return r
}
