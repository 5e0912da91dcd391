package locale

var languages = map[string]Language{
	"en": {
		Code:     "en",
		Tag:      "en-US",
		Weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		strings: map[string]string{
			KeyTitle:             "Weather",
			KeySearchPlaceholder: "Search city...",
			KeyLoading:           "Loading...",
			KeyErrorFetch:        "Failed to fetch weather data",
			KeyEnterCity:         "Enter a city name to see the weather.",
			KeyHumidity:          "Humidity",
			KeyWind:              "Wind",
			KeyFeelsLike:         "Feels Like",
			KeyAQI:               "AQI",
			KeyHourlyForecast:    "Hourly Forecast",
			KeyDailyForecast:     "5-Day Daily",
			KeyGood:              "Good",
			KeyFair:              "Fair",
			KeyModerate:          "Moderate",
			KeyPoor:              "Poor",
			KeyVeryPoor:          "Very Poor",
			KeyUnknown:           "Unknown",
			KeyCityNotFound:      "City not found",
			KeyGeoUnavailable:    "Location access denied or unavailable.",
			KeyGeoUnsupported:    "Geolocation is not supported by this browser.",
		},
	},
	"ko": {
		Code:     "ko",
		Tag:      "ko-KR",
		Weekdays: [7]string{"일", "월", "화", "수", "목", "금", "토"},
		strings: map[string]string{
			KeyTitle:             "날씨",
			KeySearchPlaceholder: "도시 검색...",
			KeyLoading:           "로딩 중...",
			KeyErrorFetch:        "날씨 정보를 가져오는데 실패했습니다",
			KeyEnterCity:         "날씨를 확인하려면 도시 이름을 입력하세요.",
			KeyHumidity:          "습도",
			KeyWind:              "바람",
			KeyFeelsLike:         "체감 온도",
			KeyAQI:               "대기질",
			KeyHourlyForecast:    "시간별 예보",
			KeyDailyForecast:     "5일 예보",
			KeyGood:              "좋음",
			KeyFair:              "보통",
			KeyModerate:          "주의",
			KeyPoor:              "나쁨",
			KeyVeryPoor:          "매우 나쁨",
			KeyUnknown:           "알 수 없음",
		},
	},
	"de": {
		Code:     "de",
		Tag:      "de-DE",
		Weekdays: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		strings: map[string]string{
			KeyTitle:             "Wetter",
			KeySearchPlaceholder: "Stadt suchen...",
			KeyLoading:           "Laden...",
			KeyErrorFetch:        "Wetterdaten konnten nicht abgerufen werden",
			KeyEnterCity:         "Geben Sie einen Städtenamen ein.",
			KeyHumidity:          "Feuchtigkeit",
			KeyWind:              "Wind",
			KeyFeelsLike:         "Gefühlt",
			KeyAQI:               "Luftqualität",
			KeyHourlyForecast:    "Stündliche Vorhersage",
			KeyDailyForecast:     "5-Tage Vorhersage",
			KeyGood:              "Gut",
			KeyFair:              "Okay",
			KeyModerate:          "Mäßig",
			KeyPoor:              "Schlecht",
			KeyVeryPoor:          "Sehr schlecht",
			KeyUnknown:           "Unbekannt",
		},
	},
	"ja": {
		Code:     "ja",
		Tag:      "ja-JP",
		Weekdays: [7]string{"日", "月", "火", "水", "木", "金", "土"},
		strings: map[string]string{
			KeyTitle:             "天気",
			KeySearchPlaceholder: "都市を検索...",
			KeyLoading:           "読み込み中...",
			KeyErrorFetch:        "気象データの取得に失敗しました",
			KeyEnterCity:         "都市名を入力して天気を確認してください。",
			KeyHumidity:          "湿度",
			KeyWind:              "風",
			KeyFeelsLike:         "体感温度",
			KeyAQI:               "空気質",
			KeyHourlyForecast:    "時間ごとの予報",
			KeyDailyForecast:     "5日間の予報",
			KeyGood:              "良い",
			KeyFair:              "普通",
			KeyModerate:          "並",
			KeyPoor:              "悪い",
			KeyVeryPoor:          "非常に悪い",
			KeyUnknown:           "不明",
		},
	},
	"fr": {
		Code:     "fr",
		Tag:      "fr-FR",
		Weekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		strings: map[string]string{
			KeyTitle:             "Météo",
			KeySearchPlaceholder: "Rechercher une ville...",
			KeyLoading:           "Chargement...",
			KeyErrorFetch:        "Échec de la récupération des données météo",
			KeyEnterCity:         "Entrez un nom de ville pour voir la météo.",
			KeyHumidity:          "Humidité",
			KeyWind:              "Vent",
			KeyFeelsLike:         "Ressenti",
			KeyAQI:               "QAI",
			KeyHourlyForecast:    "Prévisions horaires",
			KeyDailyForecast:     "Prévisions sur 5 jours",
			KeyGood:              "Bon",
			KeyFair:              "Correct",
			KeyModerate:          "Modéré",
			KeyPoor:              "Mauvais",
			KeyVeryPoor:          "Très mauvais",
			KeyUnknown:           "Inconnu",
		},
	},
	"ar": {
		Code:     "ar",
		Tag:      "ar-EG",
		RTL:      true,
		Weekdays: [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
		strings: map[string]string{
			KeyTitle:             "الطقس",
			KeySearchPlaceholder: "ابحث عن مدينة...",
			KeyLoading:           "جار التحميل...",
			KeyErrorFetch:        "فشل في جلب بيانات الطقس",
			KeyEnterCity:         "أدخل اسم المدينة لمعرفة الطقس.",
			KeyHumidity:          "الرطوبة",
			KeyWind:              "الرياح",
			KeyFeelsLike:         "شعور بـ",
			KeyAQI:               "جودة الهواء",
			KeyHourlyForecast:    "توقعات كل ساعة",
			KeyDailyForecast:     "توقعات لـ 5 أيام",
			KeyGood:              "جيد",
			KeyFair:              "مقبول",
			KeyModerate:          "متوسط",
			KeyPoor:              "سيء",
			KeyVeryPoor:          "سيء جداً",
			KeyUnknown:           "غير معروف",
		},
	},
	"ru": {
		Code:     "ru",
		Tag:      "ru-RU",
		Weekdays: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		strings: map[string]string{
			KeyTitle:             "Погода",
			KeySearchPlaceholder: "Поиск города...",
			KeyLoading:           "Загрузка...",
			KeyErrorFetch:        "Не удалось получить данные о погоде",
			KeyEnterCity:         "Введите название города, чтобы узнать погоду.",
			KeyHumidity:          "Влажность",
			KeyWind:              "Ветер",
			KeyFeelsLike:         "Ощущается",
			KeyAQI:               "ИКВ",
			KeyHourlyForecast:    "Почасовой прогноз",
			KeyDailyForecast:     "Прогноз на 5 дней",
			KeyGood:              "Хорошо",
			KeyFair:              "Нормально",
			KeyModerate:          "Средне",
			KeyPoor:              "Плохо",
			KeyVeryPoor:          "Очень плохо",
			KeyUnknown:           "Неизвестно",
		},
	},
	"es": {
		Code:     "es",
		Tag:      "es-ES",
		Weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		strings: map[string]string{
			KeyTitle:             "Tiempo",
			KeySearchPlaceholder: "Buscar ciudad...",
			KeyLoading:           "Cargando...",
			KeyErrorFetch:        "Error al obtener datos meteorológicos",
			KeyEnterCity:         "Ingrese el nombre de una ciudad para ver el clima.",
			KeyHumidity:          "Humedad",
			KeyWind:              "Viento",
			KeyFeelsLike:         "Sensación",
			KeyAQI:               "ICA",
			KeyHourlyForecast:    "Pronóstico por hora",
			KeyDailyForecast:     "Pronóstico de 5 días",
			KeyGood:              "Bueno",
			KeyFair:              "Aceptable",
			KeyModerate:          "Moderado",
			KeyPoor:              "Malo",
			KeyVeryPoor:          "Muy malo",
			KeyUnknown:           "Desconocido",
		},
	},
	"zh": {
		Code:     "zh",
		Tag:      "zh-CN",
		Weekdays: [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		strings: map[string]string{
			KeyTitle:             "天气",
			KeySearchPlaceholder: "搜索城市...",
			KeyLoading:           "加载中...",
			KeyErrorFetch:        "获取天气数据失败",
			KeyEnterCity:         "输入城市名称以查看天气。",
			KeyHumidity:          "湿度",
			KeyWind:              "风",
			KeyFeelsLike:         "体感温度",
			KeyAQI:               "空气质量",
			KeyHourlyForecast:    "每小时预报",
			KeyDailyForecast:     "5天预报",
			KeyGood:              "优",
			KeyFair:              "良",
			KeyModerate:          "中",
			KeyPoor:              "差",
			KeyVeryPoor:          "极差",
			KeyUnknown:           "未知",
		},
	},
}
