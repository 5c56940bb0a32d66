package shader

// VertexSource transforms positions into clip space and hands world-space
// position, normal and scaled UVs to the fragment stage.
const VertexSource = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec3 aNormal;
	layout (location = 2) in vec2 aUV;

	out vec3 fragPos;
	out vec3 fragNormal;
	out vec2 fragUV;

	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 projection;
	uniform vec2 UVscale;

	void main() {
		vec4 world = model * vec4(aPos, 1.0);
		fragPos = world.xyz;
		fragNormal = mat3(transpose(inverse(model))) * aNormal;
		fragUV = aUV * UVscale;
		gl_Position = projection * view * world;
	}
`

// FragmentSource does Phong shading with one directional light, five point
// light slots and a spot slot, over either a sampled texture or a flat
// object color.
const FragmentSource = `
	#version 410 core

	struct Material {
		vec3 diffuseColor;
		vec3 specularColor;
		float shininess;
	};

	struct DirectionalLight {
		bool bActive;
		vec3 direction;
		vec3 ambient;
		vec3 diffuse;
		vec3 specular;
	};

	struct PointLight {
		bool bActive;
		vec3 position;
		vec3 ambient;
		vec3 diffuse;
		vec3 specular;
	};

	struct SpotLight {
		bool bActive;
		vec3 position;
		vec3 direction;
		float cutOff;
		float outerCutOff;
		vec3 ambient;
		vec3 diffuse;
		vec3 specular;
	};

	#define POINT_LIGHT_COUNT 5

	in vec3 fragPos;
	in vec3 fragNormal;
	in vec2 fragUV;

	out vec4 outColor;

	uniform bool bUseTexture;
	uniform bool bUseLighting;
	uniform vec4 objectColor;
	uniform sampler2D objectTexture;
	uniform vec3 viewPosition;
	uniform Material material;
	uniform DirectionalLight directionalLight;
	uniform PointLight pointLights[POINT_LIGHT_COUNT];
	uniform SpotLight spotLight;

	vec3 shadeDirectional(vec3 normal, vec3 viewDir) {
		vec3 lightDir = normalize(-directionalLight.direction);
		float diff = max(dot(normal, lightDir), 0.0);
		vec3 reflectDir = reflect(-lightDir, normal);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
		return directionalLight.ambient
			+ directionalLight.diffuse * diff * material.diffuseColor
			+ directionalLight.specular * spec * material.specularColor;
	}

	vec3 shadePoint(PointLight light, vec3 normal, vec3 viewDir) {
		vec3 lightDir = normalize(light.position - fragPos);
		float diff = max(dot(normal, lightDir), 0.0);
		vec3 reflectDir = reflect(-lightDir, normal);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
		return light.ambient
			+ light.diffuse * diff * material.diffuseColor
			+ light.specular * spec * material.specularColor;
	}

	vec3 shadeSpot(vec3 normal, vec3 viewDir) {
		vec3 lightDir = normalize(spotLight.position - fragPos);
		float theta = dot(lightDir, normalize(-spotLight.direction));
		float epsilon = spotLight.cutOff - spotLight.outerCutOff;
		float intensity = clamp((theta - spotLight.outerCutOff) / epsilon, 0.0, 1.0);
		float diff = max(dot(normal, lightDir), 0.0);
		vec3 reflectDir = reflect(-lightDir, normal);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
		return spotLight.ambient
			+ intensity * (spotLight.diffuse * diff * material.diffuseColor
				+ spotLight.specular * spec * material.specularColor);
	}

	void main() {
		vec4 base = bUseTexture ? texture(objectTexture, fragUV) : objectColor;

		if (!bUseLighting) {
			outColor = base;
			return;
		}

		vec3 normal = normalize(fragNormal);
		vec3 viewDir = normalize(viewPosition - fragPos);

		vec3 light = vec3(0.0);
		if (directionalLight.bActive)
			light += shadeDirectional(normal, viewDir);
		for (int i = 0; i < POINT_LIGHT_COUNT; i++) {
			if (pointLights[i].bActive)
				light += shadePoint(pointLights[i], normal, viewDir);
		}
		if (spotLight.bActive)
			light += shadeSpot(normal, viewDir);

		outColor = vec4(light * base.rgb, base.a);
	}
`
