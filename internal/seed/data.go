package seed

import "github.com/BruksfildServices01/dance-school/internal/models"

func demoClasses() []models.DanceClass {
	return []models.DanceClass{
		{
			Name:        "Бальные танцы",
			Description: "Классические бальные танцы: вальс, танго, фокстрот. Для начинающих и продолжающих.",
			Level:       "Начинающий",
			Duration:    60,
			Price:       1500,
			ImageURL:    "/static/images/ballroom.jpg",
		},
		{
			Name:        "Хип-хоп",
			Description: "Современные уличные танцы: динамичные движения, работа над стилем и импровизация.",
			Level:       "Средний",
			Duration:    90,
			Price:       2000,
			ImageURL:    "/static/images/hiphop.jpg",
		},
		{
			Name:        "Балет",
			Description: "Классическая хореография и балетная техника, работа у станка, гибкость и сила.",
			Level:       "Продвинутый",
			Duration:    120,
			Price:       2500,
			ImageURL:    "/static/images/ballet.jpg",
		},
		{
			Name:        "Сальса",
			Description: "Латиноамериканские танцы: базовые шаги, парные комбинации и вращения.",
			Level:       "Начинающий",
			Duration:    60,
			Price:       1700,
			ImageURL:    "/static/images/salsa.jpg",
		},
		{
			Name:        "Танго",
			Description: "Аргентинское танго: близкий контакт, импровизация и музыкальность.",
			Level:       "Средний",
			Duration:    75,
			Price:       2200,
			ImageURL:    "/static/images/tango.jpg",
		},
		{
			Name:        "Contemporary",
			Description: "Современный танец на стыке балета, джаза и модерна.",
			Level:       "Продвинутый",
			Duration:    90,
			Price:       2300,
			ImageURL:    "/static/images/contemporary.jpg",
		},
	}
}

func demoTeachers() []models.Teacher {
	return []models.Teacher{
		{
			Name:           "Анна Иванова",
			Bio:            "Профессиональная балерина, выпускница Академии русского балета им. Вагановой.",
			Specialization: "Балет, Contemporary",
			Experience:     15,
			PhotoURL:       "/static/images/teacher1.jpg",
		},
		{
			Name:           "Михаил Петров",
			Bio:            "Чемпион России по бальным танцам, международный инструктор.",
			Specialization: "Бальные танцы",
			Experience:     10,
			PhotoURL:       "/static/images/teacher2.jpg",
		},
		{
			Name:           "Елена Смирнова",
			Bio:            "Хореограф в стиле хип-хоп, участница международных баттлов.",
			Specialization: "Хип-хоп, Уличные танцы",
			Experience:     8,
			PhotoURL:       "/static/images/teacher3.jpg",
		},
		{
			Name:           "Карлос Родригес",
			Bio:            "Профессиональный танцор сальсы и бачаты родом с Кубы.",
			Specialization: "Сальса, Бачата",
			Experience:     12,
			PhotoURL:       "/static/images/teacher4.jpg",
		},
		{
			Name:           "Ольга Козлова",
			Bio:            "Сертифицированный инструктор аргентинского танго.",
			Specialization: "Аргентинское танго",
			Experience:     9,
			PhotoURL:       "/static/images/teacher5.jpg",
		},
	}
}

// slot refers to classes and teachers by their index in demoClasses and
// demoTeachers.
type slot struct {
	class, teacher int
	day            string
	start, end     string
	room           string
}

var weeklySlots = []slot{
	{0, 1, "Понедельник", "18:00", "19:00", "Зал 1"},
	{3, 3, "Понедельник", "19:00", "20:00", "Зал 2"},
	{1, 2, "Понедельник", "20:00", "21:30", "Зал 1"},

	{2, 0, "Вторник", "17:00", "19:00", "Зал 1"},
	{4, 4, "Вторник", "19:00", "20:15", "Зал 2"},
	{5, 0, "Вторник", "20:30", "22:00", "Зал 1"},

	{0, 1, "Среда", "18:00", "19:00", "Зал 1"},
	{3, 3, "Среда", "19:00", "20:00", "Зал 2"},
	{1, 2, "Среда", "20:00", "21:30", "Зал 1"},

	{2, 0, "Четверг", "17:00", "19:00", "Зал 1"},
	{4, 4, "Четверг", "19:00", "20:15", "Зал 2"},
	{5, 0, "Четверг", "20:30", "22:00", "Зал 1"},

	{0, 1, "Пятница", "18:00", "19:00", "Зал 1"},
	{3, 3, "Пятница", "19:00", "20:00", "Зал 2"},

	{1, 2, "Суббота", "11:00", "12:30", "Зал 1"},
	{2, 0, "Суббота", "13:00", "15:00", "Зал 1"},
	{4, 4, "Суббота", "15:30", "16:45", "Зал 2"},
	{5, 0, "Суббота", "17:00", "18:30", "Зал 1"},

	{3, 3, "Воскресенье", "12:00", "13:00", "Зал 2"},
	{0, 1, "Воскресенье", "14:00", "15:00", "Зал 1"},
}

func demoNews(authorID uint) []models.News {
	return []models.News{
		{
			Title:       "Открытие нового танцевального зала",
			Content:     "Новый зал площадью 150 кв.м. с профессиональными зеркалами и звуковым оборудованием. Приходите на пробное занятие!",
			AuthorID:    authorID,
			ImageURL:    "/static/images/news1.jpg",
			IsPublished: true,
		},
		{
			Title:       "Летний интенсив по хип-хопу",
			Content:     "Интенсив с 1 по 15 июля: базовые движения, импровизация и постановка полноценного танца.",
			AuthorID:    authorID,
			ImageURL:    "/static/images/news2.jpg",
			IsPublished: true,
		},
		{
			Title:       "Набор в детские группы",
			Content:     "Набор в группы для детей от 4 до 12 лет. Первое пробное занятие бесплатно.",
			AuthorID:    authorID,
			ImageURL:    "/static/images/news3.jpg",
			IsPublished: true,
		},
	}
}
